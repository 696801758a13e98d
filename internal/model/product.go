package model

// Product represents a row in the `products` table.  Prices are stored as
// integers in the smallest currency unit; there is no decimal representation
// anywhere in the system.  Description and Category are nullable columns and
// map to pointer fields so absent values serialize as JSON null.
//
// Fields:
//  ID          – primary key identifier; stable under re-seeding.
//  Name        – product name, at most 100 characters.
//  Image       – image URI.
//  Price       – price in minor currency units.
//  Description – optional free-form text.
//  Category    – optional category label (e.g. "Phone", "Laptop").
type Product struct {
    ID          uint64  `json:"id"`          // products.id
    Name        string  `json:"name"`        // products.name
    Image       string  `json:"image"`       // products.image
    Price       int64   `json:"price"`       // products.price
    Description *string `json:"description"` // products.description (nullable)
    Category    *string `json:"category"`    // products.category (nullable)
}
