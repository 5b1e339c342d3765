package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// each pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the bouquet catalog if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price INTEGER NOT NULL DEFAULT 0 CHECK (price >= 0),
  category TEXT NOT NULL CHECK (category IN ('mono','mixed','composition','toys','sweets','balloons')),
  image_url TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  composition TEXT NOT NULL DEFAULT '',
  is_available INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_available  ON products(is_available);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo bouquets")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(name,price,category,image_url,description,composition,is_available) VALUES
	  ('Розы Premium',4500,'mono','/media/roses-premium.jpg','Монобукет из 25 нежных розовых роз','25 роз, эвкалипт, упаковка крафт',1),
	  ('Солнечный день',4200,'mixed','/media/sunny-day.jpg','Сборный букет из желтых и оранжевых цветов','Герберы, хризантемы, зелень',1),
	  ('Весенний сад',2800,'mixed','/media/spring-garden.jpg','Свежий весенний букет с тюльпанами и нарциссами','Тюльпаны, нарциссы, мимоза',1),
	  ('Цветочная коробка',5500,'composition','/media/flower-box.jpg','Элегантная композиция из роз в шляпной коробке','Розы, гортензия, шляпная коробка',1),
	  ('Мишка с цветами',3200,'toys','/media/teddy.jpg','Плюшевый мишка с букетом из 15 роз','Мишка 30 см, 15 роз',1),
	  ('Букет с Raffaello',4800,'sweets','/media/raffaello.jpg','Нежный букет с конфетами Raffaello','Розы, Raffaello 150 г',1),
	  ('Цветы и шары',3900,'balloons','/media/balloons.jpg','Букет с гелиевыми шарами в подарок','Букет, 3 гелиевых шара',1),
	  ('Пионы белые',6800,'mono','/media/peonies.jpg','Монобукет из ароматных белых пионов','11 пионов, атласная лента',0)`)

	return tx.Commit()
}
