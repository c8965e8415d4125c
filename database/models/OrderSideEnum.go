package models

import (
	"database/sql/driver"
	"fmt"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

func (o OrderSide) IsValid() bool {
	return o == OrderSideBuy || o == OrderSideSell
}

func (o OrderSide) String() string {
	return string(o)
}

func (o *OrderSide) Scan(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("failed to scan OrderSide: expected string, got %T", value)
	}
	*o = OrderSide(str)

	return nil
}

func (o OrderSide) Value() (driver.Value, error) {
	return string(o), nil
}
