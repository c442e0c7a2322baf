/*
 * Copyright 2025 EdgeWatch Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package db is the Postgres-backed device registry and metric store.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edgewatch/edgewatch/pkg/logger"
)

// DB implements Store over a pgx connection pool.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New wraps an established pool. Call Init before first use on a fresh
// database.
func New(pool *pgxpool.Pool, log logger.Logger) *DB {
	return &DB{pool: pool, logger: log}
}

// Init applies the schema. Every statement is idempotent, so Init is
// safe to run on every startup.
func (db *DB) Init(ctx context.Context) error {
	for i, ddl := range schemaDDL {
		if _, err := db.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}

	db.logger.Info().Int("statements", len(schemaDDL)).Msg("schema applied")

	return nil
}

// Close releases the underlying pool.
func (db *DB) Close() {
	db.pool.Close()
}
