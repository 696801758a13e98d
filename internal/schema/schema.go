// Package schema brings the database up to the current layout at process
// start.  Everything in here is idempotent: tables are created only when
// missing, the category column is added only when absent, and the seed
// catalog is applied as an upsert keyed on product id so re-running the
// initializer never duplicates rows or disturbs data outside the seed list.
package schema

import (
    "context"
    "database/sql"
    "fmt"
)

const createProducts = `
CREATE TABLE IF NOT EXISTS products (
    id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    name        VARCHAR(100)    NOT NULL,
    image       TEXT            NOT NULL,
    price       BIGINT          NOT NULL,
    description TEXT            NULL,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const createUsers = `
CREATE TABLE IF NOT EXISTS users (
    id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    name          VARCHAR(100)    NOT NULL,
    email         VARCHAR(255)    NOT NULL,
    password_hash VARCHAR(100)    NOT NULL,
    created_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    UNIQUE KEY uq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// seedProduct is one row of the fixed startup catalog.
type seedProduct struct {
    ID          uint64
    Name        string
    Image       string
    Price       int64 // minor currency units
    Description string
    Category    string
}

// seedCatalog is upserted on every start.  Ids are fixed so repeated runs
// overwrite the same rows; rows outside this list are never touched.
var seedCatalog = []seedProduct{
    {6, "iPhone 15 Pro", "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/iphone-15-pro-finish-select-202309-6-7inch-bluetitanium", 28990000, "Chip A17 Pro, titan sieu nhe", "Phone"},
    {7, "MacBook Air M3", "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/mba15-silver-select-202402", 31990000, "Man hinh Liquid Retina, pin 18h", "Laptop"},
    {8, "Galaxy S24 Ultra", "https://images.samsung.com/is/image/samsung/p6pim/in/2401/gallery/in-galaxy-s24-s928", 29990000, "Camera 200MP, S Pen", "Phone"},
    {9, "Sony WH-1000XM5", "https://www.sony.com/image/5d3e3c5d7f7a7f1b1a1b1a1b1a1b1a1b", 8490000, "Chong on dinh cao", "Headphone"},
    {10, "Dell XPS 14", "https://i.dell.com/is/image/DellContent/xps-14-9440-gray-gallery-1", 45990000, "Man hinh OLED 3.2K", "Laptop"},
}

// Init creates the tables, migrates the products table to the current
// column set and upserts the seed catalog.  The caller decides whether a
// failure is fatal; serving catalog reads against a schema left behind by a
// previous successful run is allowed.
func Init(ctx context.Context, db *sql.DB) error {
    if _, err := db.ExecContext(ctx, createProducts); err != nil {
        return fmt.Errorf("create products: %w", err)
    }
    if _, err := db.ExecContext(ctx, createUsers); err != nil {
        return fmt.Errorf("create users: %w", err)
    }
    if err := ensureCategoryColumn(ctx, db); err != nil {
        return fmt.Errorf("add category column: %w", err)
    }
    if err := seed(ctx, db); err != nil {
        return fmt.Errorf("seed catalog: %w", err)
    }
    return nil
}

// ensureCategoryColumn adds products.category when it does not exist yet.
// The column arrived after the first release, so older databases miss it.
func ensureCategoryColumn(ctx context.Context, db *sql.DB) error {
    var n int
    err := db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM information_schema.columns
         WHERE table_schema = DATABASE() AND table_name = 'products' AND column_name = 'category'`).Scan(&n)
    if err != nil {
        return err
    }
    if n > 0 {
        return nil
    }
    // Binary collation: category filters compare byte-for-byte, so
    // "laptop" never matches a stored "Laptop".  The table default is a
    // case-insensitive utf8mb4 collation and would fold the comparison.
    _, err = db.ExecContext(ctx, "ALTER TABLE products ADD COLUMN category VARCHAR(100) COLLATE utf8mb4_bin NULL")
    return err
}

// seed upserts every row of seedCatalog keyed on id.  The id never changes;
// all other fields take the seed values.
func seed(ctx context.Context, db *sql.DB) error {
    const upsert = `INSERT INTO products (id, name, image, price, description, category)
        VALUES (?,?,?,?,?,?)
        ON DUPLICATE KEY UPDATE
            name=VALUES(name), image=VALUES(image), price=VALUES(price),
            description=VALUES(description), category=VALUES(category)`
    for _, p := range seedCatalog {
        if _, err := db.ExecContext(ctx, upsert,
            p.ID, p.Name, p.Image, p.Price, p.Description, p.Category); err != nil {
            return fmt.Errorf("upsert product %d: %w", p.ID, err)
        }
    }
    return nil
}
