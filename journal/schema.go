package journal

const Schema = `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL UNIQUE,
	created_at DATETIME NOT NULL,
	stock TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	quantity INTEGER NOT NULL,
	stop_loss_percent REAL,
	target_percent REAL,
	stop_loss_price REAL NOT NULL,
	target_price REAL NOT NULL,
	position_value REAL NOT NULL,
	risk_reward TEXT NOT NULL,
	exit_price REAL NOT NULL,
	gross_pnl REAL NOT NULL,
	net_pnl REAL NOT NULL,
	total_charges REAL NOT NULL,
	pnl_percent REAL NOT NULL,
	brokerage REAL NOT NULL,
	stt REAL NOT NULL,
	gst REAL NOT NULL,
	stamp_duty REAL NOT NULL,
	exchange_fee REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
`

const entryColumns = `id, seq, created_at, stock, direction, entry_price, quantity,
	stop_loss_percent, target_percent, stop_loss_price, target_price, position_value, risk_reward,
	exit_price, gross_pnl, net_pnl, total_charges, pnl_percent,
	brokerage, stt, gst, stamp_duty, exchange_fee`
