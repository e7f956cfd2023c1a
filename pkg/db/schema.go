package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Recipes: one row per scraped recipe URL, newest scrape wins
CREATE TABLE IF NOT EXISTS recipes (
    recipe_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL UNIQUE,
    domain TEXT NOT NULL,
    title TEXT NOT NULL,
    language TEXT,                 -- ISO-639-1 code, empty when undetected
    converted BOOLEAN NOT NULL DEFAULT 0,
    ingredient_count INTEGER NOT NULL DEFAULT 0,
    instruction_count INTEGER NOT NULL DEFAULT 0,
    payload TEXT NOT NULL,         -- normalized recipe as JSON
    fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_recipes_domain ON recipes(domain);
CREATE INDEX IF NOT EXISTS idx_recipes_fetched ON recipes(fetched_at DESC);

-- Scrapes: every scrape attempt, successful or not
CREATE TABLE IF NOT EXISTS scrapes (
    scrape_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    status TEXT NOT NULL,          -- success or failed
    error_message TEXT,
    cache_hit BOOLEAN NOT NULL DEFAULT 0,
    duration_ms INTEGER,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scrapes_url ON scrapes(url);
CREATE INDEX IF NOT EXISTS idx_scrapes_started ON scrapes(started_at DESC);
`
