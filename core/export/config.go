package export

// Config holds the default input locations for the two exports.
type Config struct {
	// Barcodes is the path to the barcode export CSV file.
	Barcodes string `mapstructure:"barcodes" default:"barcodes.csv"`
	// Orders is the path to the order export CSV file.
	Orders string `mapstructure:"orders" default:"orders.csv"`
	// BarcodesObject is the object name of the barcode export in the bucket.
	BarcodesObject string `mapstructure:"barcodes_object" default:"exports/barcodes.csv"`
	// OrdersObject is the object name of the order export in the bucket.
	OrdersObject string `mapstructure:"orders_object" default:"exports/orders.csv"`
}
