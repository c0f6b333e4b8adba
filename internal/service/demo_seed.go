package service

import (
	"context"

	"backend/internal/model"
	"backend/pkg/logging"
)

// SeedDemoData loads the demo guests and food orders through the public
// service operations, so a fresh process has something to show on the
// dashboard. Enabled via the SEED_DEMO_DATA env flag.
func SeedDemoData(ctx context.Context, guests GuestService, orders OrderService) {
	demoGuests := []RegisterGuestRequest{
		{Name: "Arun Kumar", Phone: "9876543210", PackageType: model.PackageFamily, AdvancePaid: "1500", RoomNumber: "101"},
		{Name: "Priya Dharshini", Phone: "9123456789", PackageType: model.PackageLuxury, AdvancePaid: "5000", RoomNumber: "102"},
		{Name: "Selvamani M", Phone: "8877665544", PackageType: model.PackageBasic, AdvancePaid: "500"},
	}

	demoOrders := []struct {
		items  string
		amount string
		status string
	}{
		{"2x Masala Dosa, 1x Filter Coffee", "320", model.OrderPending},
		{"1x Veg Biryani, 1x Paneer Butter Masala", "550", model.OrderPreparing},
		{"1x Cold Coffee, 1x Sandwich", "210", model.OrderPending},
	}

	for i, req := range demoGuests {
		guest, err := guests.Register(ctx, req)
		if err != nil {
			logging.ErrorLogger.Errorf("demo seed: register %s: %v", req.Name, err)
			continue
		}

		demo := demoOrders[i]
		order, err := orders.PlaceOrder(ctx, PlaceOrderRequest{
			GuestID: guest.ID,
			Items:   demo.items,
			Amount:  demo.amount,
		})
		if err != nil {
			logging.ErrorLogger.Errorf("demo seed: order for %s: %v", guest.ID, err)
			continue
		}
		if demo.status != model.OrderPending {
			if _, _, err := orders.UpdateStatus(ctx, order.ID, demo.status); err != nil {
				logging.ErrorLogger.Errorf("demo seed: order %s status: %v", order.ID, err)
			}
		}
	}
	logging.InfoLogger.Info("Demo data seeded")
}
