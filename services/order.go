package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"burger-cli/models"
)

// PricedCheese is what the price is computed with, whatever cheese was chosen.
const PricedCheese = "cheese"

var ErrNoOrder = errors.New("no order produced")

// Session numbers the orders of one program run. It is not safe for
// concurrent use.
type Session struct {
	ID    uuid.UUID
	count int64
	last  string
}

func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// Next advances the counter and returns the new sequence id.
func (s *Session) Next() int64 {
	s.count++
	return s.count
}

func (s *Session) Count() int64 { return s.count }

// LastSummary is the summary of the most recent successful order, "" if none.
func (s *Session) LastSummary() string { return s.last }

type Assembler struct {
	menu   *models.Menu
	picker Picker
	log    *zap.Logger
	now    func() time.Time
}

func NewAssembler(menu *models.Menu, picker Picker, log *zap.Logger) *Assembler {
	return &Assembler{menu: menu, picker: picker, log: log, now: time.Now}
}

// Assemble collects bun, meat, sauce and cheese in that order and prices the
// result. The session counter advances even when assembly fails; on failure
// no order is returned.
func (a *Assembler) Assemble(ctx context.Context, s *Session) (*models.Order, error) {
	id := s.Next()
	log := a.log.With(zap.String("session", s.ID.String()), zap.Int64("order_id", id))

	order, err := a.collect(ctx, id)
	if err != nil {
		log.Error("Error assembling burger", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNoOrder, err)
	}

	s.last = order.Summary()
	log.Debug("burger assembled", zap.Float64("price", order.Price), zap.String("timestamp", order.Timestamp))
	return order, nil
}

func (a *Assembler) collect(ctx context.Context, id int64) (*models.Order, error) {
	o := &models.Order{ID: id}
	steps := []struct {
		name string
		pick func(context.Context) (string, error)
		dst  *string
	}{
		{"bun", a.picker.Bun, &o.Bun},
		{"meat", a.picker.Meat, &o.Meat},
		{"sauce", a.picker.Sauce, &o.Sauce},
		{"cheese", a.picker.Cheese, &o.Cheese},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := step.pick(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
		*step.dst = v
	}

	o.Price = CalculatePrice(a.menu, []string{o.Bun, o.Meat, PricedCheese})
	o.Timestamp = models.FormatTimestamp(a.now())
	return o, nil
}

// OrderSaver persists a rendered order and the running count.
type OrderSaver interface {
	SaveOrder(summary string, count int64) error
	OrderPath() string
}

// SaveOrder writes the summary and count. Failures are logged, not returned.
func SaveOrder(log *zap.Logger, store OrderSaver, summary string, count int64) {
	if err := store.SaveOrder(summary, count); err != nil {
		log.Error("Error saving burger", zap.Error(err))
		return
	}
	log.Info("Burger saved to " + store.OrderPath())
}
