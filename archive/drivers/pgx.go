package drivers

import (
	// Registers "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"
)
