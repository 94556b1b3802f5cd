package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is one line item of an order. It has no identity beyond its
// position in the parent order's product list.
type Product struct {
	Name            string  `bson:"name" json:"name"`
	PurchasingPrice Numeric `bson:"purchasingPrice" json:"purchasingPrice"`
	UnitsSold       Numeric `bson:"unitsSold" json:"unitsSold"`
	List            string  `bson:"list" json:"list"`
}

// Order is one recorded sale. The id is assigned exclusively by the storage
// layer on insert; clients never invent it. DarazCommission, Profit and Loss
// are derived fields, never user-entered.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DateTime        string             `bson:"dateTime" json:"dateTime"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	Products        []Product          `bson:"products" json:"products"`
	GrossSale       Numeric            `bson:"grossSale" json:"grossSale"`
	NetSales        Numeric            `bson:"netSales" json:"netSales"`
	DarazCommission Numeric            `bson:"darazCommission" json:"darazCommission"`
	Profit          Numeric            `bson:"profit" json:"profit"`
	Loss            Numeric            `bson:"loss" json:"loss"`
	Payment         string             `bson:"payment" json:"payment"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewDraft returns a blank order draft with exactly one empty product row.
func NewDraft() Order {
	return Order{Products: []Product{{}}}
}

// Clone returns a deep-copy snapshot of the order, decoupled from the live
// editable draft. Drafts are cloned before being handed to the storage
// adapter so later edits cannot leak into an in-flight write.
func (o Order) Clone() Order {
	dup := o
	dup.Products = make([]Product, len(o.Products))
	copy(dup.Products, o.Products)
	return dup
}
