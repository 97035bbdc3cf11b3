package dispatch

import (
	"fmt"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// User-facing notification copy. The app ships in Spanish.
const (
	titlePriceChange = "¡Cambio de precio!"
	titleNewProduct  = "¡Nuevo producto!"
)

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// buildNotification renders a change event into the notification the user
// sees. The dedup key ties the item back to the exact observation so the
// same change never produces two entries.
func buildNotification(userID string, ev *domain.ChangeEvent) *domain.NotificationItem {
	item := &domain.NotificationItem{
		UserID:          userID,
		RelatedEntityID: ev.EntityID,
		DedupKey:        ev.DedupKey(),
	}

	switch ev.Kind {
	case domain.ChangePriceIncreased:
		item.Title = titlePriceChange
		item.Message = fmt.Sprintf("%s subió a %s", ev.EntityName, formatPrice(*ev.NewPrice))
	case domain.ChangePriceDecreased:
		item.Title = titlePriceChange
		item.Message = fmt.Sprintf("%s bajó a %s", ev.EntityName, formatPrice(*ev.NewPrice))
	case domain.ChangeNewProduct:
		item.Title = titleNewProduct
		item.Message = fmt.Sprintf("Nuevo en tus favoritos: %s", ev.EntityName)
	}

	return item
}
