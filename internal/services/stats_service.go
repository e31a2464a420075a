package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// StatsOverview is the admin dashboard aggregate, recomputed on every
// request by scanning the full order/user/pizza tables.
type StatsOverview struct {
	TotalRevenue    float64        `json:"totalRevenue"`
	OrdersToday     int            `json:"ordersToday"`
	ActiveCustomers int            `json:"activeCustomers"`
	PizzaTypes      int            `json:"pizzaTypes"`
	RecentOrders    []RecentOrder  `json:"recentOrders"`
	PopularPizzas   []PopularPizza `json:"popularPizzas"`
}

// RecentOrder is a dashboard row for one of the latest orders.
type RecentOrder struct {
	ID       uint      `json:"id"`
	Customer string    `json:"customer"`
	Items    string    `json:"items"`
	Total    string    `json:"total"`
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
}

// PopularPizza is a dashboard row for a top-selling pizza.
type PopularPizza struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

type StatsService interface {
	// Overview aggregates the dashboard numbers as of now. The load is
	// all-or-nothing: if any table scan fails, the whole overview fails.
	Overview(now time.Time) (StatsOverview, error)
}

type statsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) StatsService {
	return &statsService{db: db}
}

func (s *statsService) Overview(now time.Time) (StatsOverview, error) {
	var (
		orders []models.Order
		users  []models.User
		pizzas []models.Pizza
	)

	var g errgroup.Group
	g.Go(func() error { return s.db.Find(&orders).Error })
	g.Go(func() error { return s.db.Find(&users).Error })
	g.Go(func() error { return s.db.Find(&pizzas).Error })
	if err := g.Wait(); err != nil {
		return StatsOverview{}, err
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	overview := StatsOverview{
		PizzaTypes:    len(pizzas),
		RecentOrders:  []RecentOrder{},
		PopularPizzas: []PopularPizza{},
	}
	for _, order := range orders {
		overview.TotalRevenue += order.Total
		if !order.CreatedAt.Before(midnight) {
			overview.OrdersToday++
		}
	}
	for _, user := range users {
		if user.Status == models.StatusActive {
			overview.ActiveCustomers++
		}
	}

	overview.RecentOrders = recentOrders(orders, 5)
	overview.PopularPizzas = popularPizzas(orders, 5)
	return overview, nil
}

func recentOrders(orders []models.Order, limit int) []RecentOrder {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]RecentOrder, 0, len(sorted))
	for _, order := range sorted {
		summary := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			summary = append(summary, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
		}
		recent = append(recent, RecentOrder{
			ID:       order.ID,
			Customer: order.CustomerName,
			Items:    strings.Join(summary, ", "),
			Total:    fmt.Sprintf("$%.2f", order.Total),
			Status:   order.Status,
			Time:     order.CreatedAt,
		})
	}
	return recent
}

// popularPizzas ranks pizzas by cumulative quantity ordered. The sort is
// stable, so equal counts keep the insertion order of first encounter.
func popularPizzas(orders []models.Order, limit int) []PopularPizza {
	counts := make(map[string]int)
	var names []string
	for _, order := range orders {
		for _, item := range order.Items {
			if _, seen := counts[item.Name]; !seen {
				names = append(names, item.Name)
			}
			counts[item.Name] += item.Quantity
		}
	}

	popular := make([]PopularPizza, 0, len(names))
	for _, name := range names {
		popular = append(popular, PopularPizza{Name: name, Orders: counts[name]})
	}
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Orders > popular[j].Orders
	})
	if len(popular) > limit {
		popular = popular[:limit]
	}
	return popular
}
