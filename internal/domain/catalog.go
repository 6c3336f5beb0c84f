package domain

// ItemKind tags which catalog variant a booking refers to.
type ItemKind string

const (
	ItemKindDestination ItemKind = "destination"
	ItemKindRental      ItemKind = "rental"
	ItemKindTour        ItemKind = "tour"
)

func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindDestination, ItemKindRental, ItemKindTour:
		return true
	}
	return false
}

type Destination struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       int64   `json:"price"`
	Rating      float64 `json:"rating"`
}

type CarRental struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
	Features []string `json:"features"`
}

type Tour struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Duration    string  `json:"duration"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

type TravelGuide struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
}

// Item is the common projection of the three catalog variants. The booking
// flow depends only on this, not on which variant was selected.
type Item struct {
	Kind  ItemKind `json:"kind"`
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Price int64    `json:"price"`
	Image string   `json:"image"`
}

func (d Destination) Item() Item {
	return Item{Kind: ItemKindDestination, ID: d.ID, Name: d.Name, Price: d.Price, Image: d.Image}
}

func (r CarRental) Item() Item {
	return Item{Kind: ItemKindRental, ID: r.ID, Name: r.Name, Price: r.Price, Image: r.Image}
}

func (t Tour) Item() Item {
	return Item{Kind: ItemKindTour, ID: t.ID, Name: t.Name, Price: t.Price, Image: t.Image}
}
