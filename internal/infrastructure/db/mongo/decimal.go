package mongo

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// decimalToFloat converts a Decimal128 price into a float64.
func decimalToFloat(d primitive.Decimal128) (float64, error) {
	v, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("parse decimal %q: %w", d.String(), err)
	}
	return v, nil
}

// floatToDecimal stores a price with two decimal places.
func floatToDecimal(v float64) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(strconv.FormatFloat(v, 'f', 2, 64))
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode decimal %v: %w", v, err)
	}
	return d, nil
}
