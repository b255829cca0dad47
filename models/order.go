package models

import (
	"fmt"
	"time"
)

// TimestampLayout is how order timestamps are rendered.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Order is one assembled burger. Only its summary and ID are persisted.
type Order struct {
	ID        int64
	Bun       string
	Meat      string
	Sauce     string
	Cheese    string
	Price     float64
	Timestamp string
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Summary renders the order as "<bun> bun + <meat> + <sauce> + <cheese> cheese".
func (o *Order) Summary() string {
	return fmt.Sprintf("%s bun + %s + %s + %s cheese", o.Bun, o.Meat, o.Sauce, o.Cheese)
}
