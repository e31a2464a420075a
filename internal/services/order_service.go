package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovenfresh/pizza-shop-api/internal/cart"
	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/ovenfresh/pizza-shop-api/internal/pricing"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrEmptyOrder is returned when an order is placed with no line items.
var ErrEmptyOrder = errors.New("order_has_no_items")

// ErrInvalidStatus is returned when an order update carries an unknown status.
var ErrInvalidStatus = errors.New("invalid_order_status")

const defaultEstimatedDelivery = "30 min"

type OrderService interface {
	GetAllOrders() ([]models.Order, error)
	GetOrderByID(id uint) (models.Order, error)
	// PlaceOrder runs the checkout flow: it folds the submitted items
	// through a cart (merging duplicate lines), reprices every line from
	// the live catalog, totals the order and persists the snapshot.
	PlaceOrder(order models.Order) (models.Order, error)
	// UpdateOrder is a full-document replace, status included.
	UpdateOrder(order models.Order) (models.Order, error)
}

type orderService struct {
	db    *gorm.DB
	areas AreaService
}

func NewOrderService(db *gorm.DB, areas AreaService) OrderService {
	return &orderService{db: db, areas: areas}
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id uint) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) PlaceOrder(order models.Order) (models.Order, error) {
	if len(order.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(order.Status) {
		return models.Order{}, ErrInvalidStatus
	}

	// Fold items through a session cart so duplicate (pizza, size, extras)
	// lines collapse into one with a summed quantity.
	sessionCart := cart.New()
	for _, item := range order.Items {
		line := cart.Line{
			PizzaID:   item.PizzaID,
			Name:      item.Name,
			Image:     item.Image,
			Size:      item.Size,
			Extras:    item.Extras,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
		if pizza, ok := s.lookupPizza(item); ok {
			line.PizzaID = pizza.ID
			line.Name = pizza.Name
			line.UnitPrice = pricing.UnitPrice(pizza.Price, item.Size, item.Extras)
			if line.Image == "" {
				line.Image = pizza.Image
			}
		}
		sessionCart.AddLine(line)
	}

	deliveryFee := pricing.DefaultDeliveryFee
	if order.Area != "" {
		if area, err := s.areas.GetActiveAreaByName(order.Area); err == nil {
			deliveryFee = area.DeliveryFee
		}
	}

	lines := sessionCart.Lines()
	priced := make([]pricing.Line, len(lines))
	items := make([]models.OrderItem, len(lines))
	for i, line := range lines {
		priced[i] = pricing.Line{UnitPrice: line.UnitPrice, Quantity: line.Quantity}
		items[i] = models.OrderItem{
			PizzaID:  line.PizzaID,
			Name:     line.Name,
			Size:     line.Size,
			Extras:   line.Extras,
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
			Image:    line.Image,
		}
	}
	totals := pricing.Quote(priced, deliveryFee)

	// Client-sent totals are ignored: the snapshot persisted here is the
	// one the pricing engine produced.
	order.Items = items
	order.Subtotal = totals.Subtotal
	order.DeliveryFee = totals.DeliveryFee
	order.Tax = totals.Tax
	order.Total = totals.Total

	order.Number = fmt.Sprintf("ORD-%.8s", uuid.NewString())
	if order.OrderTime == "" {
		order.OrderTime = time.Now().Format(time.RFC3339)
	}
	if order.EstimatedDelivery == "" {
		order.EstimatedDelivery = defaultEstimatedDelivery
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "cash"
	}

	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}

	s.recordCheckoutSideEffects(order)
	return order, nil
}

func (s *orderService) UpdateOrder(order models.Order) (models.Order, error) {
	var existing models.Order
	if err := s.db.First(&existing, order.ID).Error; err != nil {
		return models.Order{}, err
	}
	if !models.ValidOrderStatus(order.Status) {
		return models.Order{}, ErrInvalidStatus
	}
	// Full replace, but the snapshot identity survives the update.
	order.Number = existing.Number
	order.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// lookupPizza resolves an order item against the live catalog, by id first
// and by name as a fallback for payloads that only carry the name.
func (s *orderService) lookupPizza(item models.OrderItem) (models.Pizza, bool) {
	var pizza models.Pizza
	if item.PizzaID != 0 {
		if err := s.db.First(&pizza, item.PizzaID).Error; err == nil {
			return pizza, true
		}
	}
	if item.Name != "" {
		if err := s.db.Where("name = ?", item.Name).First(&pizza).Error; err == nil {
			return pizza, true
		}
	}
	return models.Pizza{}, false
}

// recordCheckoutSideEffects bumps the area's order counter and the
// customer's aggregate counters. Failures here are logged, not surfaced:
// the order itself is already placed.
func (s *orderService) recordCheckoutSideEffects(order models.Order) {
	if order.Area != "" {
		err := s.db.Model(&models.Area{}).
			Where("name = ?", order.Area).
			UpdateColumn("order_count", gorm.Expr("order_count + 1")).Error
		if err != nil {
			log.WithError(err).WithField("area", order.Area).
				Warn("Failed to bump area order counter")
		}
	}
	if order.CustomerEmail == "" {
		return
	}
	var user models.User
	if err := s.db.Where("email = ?", order.CustomerEmail).First(&user).Error; err != nil {
		return
	}
	now := time.Now()
	err := s.db.Model(&user).Updates(map[string]interface{}{
		"total_orders": gorm.Expr("total_orders + 1"),
		"total_spent":  gorm.Expr("total_spent + ?", order.Total),
		"last_order":   now,
	}).Error
	if err != nil {
		log.WithError(err).WithField("email", order.CustomerEmail).
			Warn("Failed to update customer order counters")
	}
}
