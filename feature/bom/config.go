package bom

// Config holds the column layout of the BOM file. Column indexes are zero-based.
type Config struct {
	// Separator is the field separator.
	Separator string `mapstructure:"separator" default:"|"`
	// SkipHeader skips the first line.
	SkipHeader bool `mapstructure:"skip_header" default:"true"`
	// ColumnRow is the row/group ID column.
	ColumnRow int `mapstructure:"column_row" default:"0"`
	// ColumnDescription is the component description column.
	ColumnDescription int `mapstructure:"column_description" default:"1"`
	// ColumnPart is the schematic part name column.
	ColumnPart int `mapstructure:"column_part" default:"2"`
	// ColumnIDs holds the reference designators of the group, space separated.
	ColumnIDs int `mapstructure:"column_ids" default:"3"`
	// ColumnValue is the component value column.
	ColumnValue int `mapstructure:"column_value" default:"4"`
	// ColumnFootprint is the footprint (pad) name column.
	ColumnFootprint int `mapstructure:"column_footprint" default:"5"`
	// ColumnQuantity is the component count column.
	ColumnQuantity int `mapstructure:"column_quantity" default:"6"`
	// ColumnManufacturer is the manufacturer column.
	ColumnManufacturer int `mapstructure:"column_manufacturer" default:"8"`
	// ColumnMPN is the manufacturer part number column.
	ColumnMPN int `mapstructure:"column_mpn" default:"10"`
	// ColumnDistributorPN is the distributor part number column.
	ColumnDistributorPN int `mapstructure:"column_distributor_pn" default:"12"`
}

// DefaultConfig returns the KiBoM layout.
func DefaultConfig() Config {
	return Config{
		Separator:           "|",
		SkipHeader:          true,
		ColumnRow:           0,
		ColumnDescription:   1,
		ColumnPart:          2,
		ColumnIDs:           3,
		ColumnValue:         4,
		ColumnFootprint:     5,
		ColumnQuantity:      6,
		ColumnManufacturer:  8,
		ColumnMPN:           10,
		ColumnDistributorPN: 12,
	}
}

// requiredColumns returns the number of fields a line must have.
func (c Config) requiredColumns() int {
	n := c.ColumnIDs
	if c.ColumnFootprint > n {
		n = c.ColumnFootprint
	}
	if c.ColumnDistributorPN > n {
		n = c.ColumnDistributorPN
	}
	return n + 1
}
