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
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (users/posts/categories)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates all tables. Exported so tests can build in-memory
// databases with the real schema.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users (keyed by identity-provider email)
CREATE TABLE IF NOT EXISTS users(
  email TEXT PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  bio TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Listings
CREATE TABLE IF NOT EXISTS posts(
  post_id INTEGER PRIMARY KEY AUTOINCREMENT,
  owner_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT,
  item_condition TEXT NOT NULL CHECK (item_condition IN ('new','excellent','good','worn')),
  size TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  for_sale INTEGER NOT NULL DEFAULT 0,
  for_rent INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_posts_owner ON posts(owner_id);

CREATE TABLE IF NOT EXISTS post_images(
  post_id INTEGER NOT NULL REFERENCES posts(post_id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  image_url TEXT NOT NULL,
  PRIMARY KEY(post_id, position)
);

CREATE TABLE IF NOT EXISTS post_categories(
  post_id INTEGER NOT NULL REFERENCES posts(post_id) ON DELETE CASCADE,
  category_id INTEGER NOT NULL,
  PRIMARY KEY(post_id, category_id)
);

-- Carts & completed orders: one pending transaction per user by convention
CREATE TABLE IF NOT EXISTS transactions(
  transaction_id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','purchased')),
  purchased_at TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_transactions_email_status ON transactions(email, status);

CREATE TABLE IF NOT EXISTS transaction_listings(
  transaction_id INTEGER NOT NULL REFERENCES transactions(transaction_id) ON DELETE CASCADE,
  post_id INTEGER NOT NULL,
  PRIMARY KEY(transaction_id, post_id)
);

-- Wishlist (favorites, independent of transactions)
CREATE TABLE IF NOT EXISTS wishlist(
  email TEXT NOT NULL,
  post_id INTEGER NOT NULL REFERENCES posts(post_id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(email, post_id)
);

-- Likes drive the trending ranking
CREATE TABLE IF NOT EXISTS post_likes(
  email TEXT NOT NULL,
  post_id INTEGER NOT NULL REFERENCES posts(post_id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(email, post_id)
);

-- Directed follow edges: email follows friend_id
CREATE TABLE IF NOT EXISTS friends(
  email TEXT NOT NULL,
  friend_id TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(email, friend_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo users/listings")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO users(email,first_name,last_name,bio) VALUES
	  ('ava@closetcircle.test','Ava','Nguyen','Closet full of vintage finds.'),
	  ('ben@closetcircle.test','Ben','Ortiz','Streetwear, mostly.'),
	  ('cleo@closetcircle.test','Cleo','Park',NULL)`)

	tx.MustExec(`INSERT INTO posts(post_id,owner_id,title,description,item_condition,size,price,for_sale,for_rent) VALUES
	  (1,'ava@closetcircle.test','Wool Peacoat','Warm navy peacoat, barely worn.','excellent','Medium',48,1,0),
	  (2,'ava@closetcircle.test','Floral Sundress','Light summer dress.','good','Small',22,1,1),
	  (3,'ben@closetcircle.test','Leather Boots','Broken in, lots of life left.','worn','Large',35,1,0),
	  (4,'cleo@closetcircle.test','Silk Scarf','Never worn, tags on.','new','',12,0,1)`)

	tx.MustExec(`INSERT INTO post_images(post_id,position,image_url) VALUES
	  (1,0,'/media/posts/1/main.jpg'),
	  (2,0,'/media/posts/2/main.jpg'),
	  (2,1,'/media/posts/2/back.jpg'),
	  (3,0,'/media/posts/3/main.jpg'),
	  (4,0,'/media/posts/4/main.jpg')`)

	tx.MustExec(`INSERT INTO post_categories(post_id,category_id) VALUES
	  (1,1),(1,6),(1,13),
	  (2,1),(2,7),(2,15),
	  (3,2),(3,8),(3,10),
	  (4,1),(4,9),(4,12)`)

	tx.MustExec(`INSERT INTO post_likes(email,post_id) VALUES
	  ('ben@closetcircle.test',1),
	  ('cleo@closetcircle.test',1),
	  ('ava@closetcircle.test',3)`)

	return tx.Commit()
}
