package stock

import "github.com/angelmondragon/hotelops-backend/pkg/db/models"

// MovementInput is the caller-supplied payload for receive and issue.
type MovementInput struct {
	ItemID      int64
	LocationID  int64
	Quantity    int
	ReferenceID *string
	PerformedBy int64
}

// LocationStock is one row of an item's stock view.
type LocationStock struct {
	ItemID       int64  `gorm:"column:item_id" json:"-"`
	LocationID   int64  `gorm:"column:location_id" json:"locationId"`
	LocationName string `gorm:"column:location_name" json:"locationName"`
	Quantity     int    `gorm:"column:quantity" json:"quantity"`
}

// View is the derived on-hand aggregate for one item. Locations without a
// stock row are absent rather than zero-filled.
type View struct {
	StockByLocation []LocationStock `json:"stockByLocation"`
	TotalStock      int             `json:"totalStock"`
}

func newView(rows []LocationStock) View {
	view := View{StockByLocation: make([]LocationStock, 0, len(rows))}
	for _, row := range rows {
		view.StockByLocation = append(view.StockByLocation, row)
		view.TotalStock += row.Quantity
	}
	return view
}

// MovementView augments a movement with display names resolved at read time.
type MovementView struct {
	models.StockMovement
	ItemName        string `gorm:"column:item_name" json:"itemName"`
	LocationName    string `gorm:"column:location_name" json:"locationName"`
	PerformedByName string `gorm:"column:performed_by_name" json:"performedByName"`
}

// MovementFilter narrows ListMovements; zero values mean "no filter".
type MovementFilter struct {
	ItemID     int64
	LocationID int64
	Limit      int
}
