package models

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null"                 json:"name"`
	Email    string `gorm:"unique;not null"          json:"email"`
	Password string `gorm:"not null"                 json:"-"`
	IsAdmin  bool   `gorm:"default:false"            json:"isAdmin"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
}

type Brand struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
}

type Product struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string   `gorm:"not null"                 json:"name"`
	Description  string   `gorm:"not null"                 json:"description"`
	Price        float64  `gorm:"not null"                 json:"price"`
	CountInStock uint     `json:"countInStock"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	CategoryID   uint     `gorm:"index"                    json:"-"`
	BrandID      uint     `gorm:"index"                    json:"-"`
	Category     Category `json:"-"`
	Brand        Brand    `json:"-"`
}

// ItemsPrice and TotalPrice are derived from the items at response time and
// are never stored, see pricing.Compute.
type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint        `gorm:"index;not null"           json:"userId"`
	PaymentStatusID uint        `json:"paymentStatusId"`
	PaymentMethod   string      `json:"paymentMethod"`
	OrderStatusID   uint        `json:"orderStatusId"`
	FullName        string      `json:"fullName"`
	ShippingAddress string      `json:"shippingAddress"`
	City            string      `json:"city"`
	PostalCode      int         `json:"postalCode"`
	County          string      `json:"county"`
	ShippingPrice   float64     `json:"shippingPrice"`
	TaxPrice        float64     `json:"taxPrice"`
	Items           []OrderItem `gorm:"foreignKey:OrderID"       json:"orderItem,omitempty"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"   json:"id"`
	OrderID   uint    `gorm:"index;not null"             json:"orderId"`
	ProductID uint    `gorm:"not null"                   json:"productId"`
	Quantity  uint    `gorm:"default:1;check:quantity>0" json:"quantity"`
	Price     float64 `gorm:"not null"                   json:"price"`
}

type Message struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Message string `gorm:"not null"                 json:"message"`
	RoomID  uint   `gorm:"index;not null"           json:"roomId"`
	UserID  uint   `gorm:"index;not null"           json:"userId"`
	User    User   `json:"user"`
}
