package internal

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// Per-prefix entity labels for the browsing page.
var entityByPrefix = map[string]string{
	"user:id:":   "USER",
	"user:name:": "USER_IDX",
	"uinv:":      "USER_INVITE",
	"token:":     "TOKEN",
	"tokenidx:":  "TOKEN_IDX",
	"chan:id:":   "CHANNEL",
	"chan:name:": "CHANNEL_IDX",
	"member:":    "MEMBERSHIP",
	"cinv:chan:": "CHAN_INVITE",
	"cinv:code:": "CHAN_INVITE_IDX",
	"msg:":       "MESSAGE",
}

type InspectRow struct {
	Key    string
	Entity string
	Fields string
}

// RowMapper turns one stored key/value pair into a display row.
type RowMapper func(key string, val []byte) InspectRow

type PageData struct {
	Prefix string
	Items  []InspectRow
}

// DebugServer serves a read-only HTML browser over the store, one row per
// key, filtered by an optional prefix. It runs as a supervised worker and
// shuts down with its context.
type DebugServer struct {
	db     *badger.DB
	log    *slog.Logger
	addr   string
	mapper RowMapper
}

func NewDebugServer(db *badger.DB, log *slog.Logger, host string, port int, mapper RowMapper) *DebugServer {
	if mapper == nil {
		mapper = SchemaMapper
	}
	return &DebugServer{db: db, log: log, addr: fmt.Sprintf("%s:%d", host, port), mapper: mapper}
}

// Handler builds the mux separately from Run so tests can drive the page
// without binding a listener.
func (s *DebugServer) Handler() http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	mux := http.NewServeMux()

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		data := PageData{Prefix: prefix}

		_ = s.db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, s.mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	return mux
}

func (s *DebugServer) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info("Debug server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// SchemaMapper labels each key by its prefix and renders the JSON value as
// sorted k=v pairs. Secrets never reach the page.
func SchemaMapper(key string, val []byte) InspectRow {
	return InspectRow{Key: key, Entity: entityOf(key), Fields: summarize(val)}
}

func entityOf(key string) string {
	for p, name := range entityByPrefix {
		if strings.HasPrefix(key, p) {
			return name
		}
	}
	return "?"
}

// summarize renders a JSON record as sorted k=v pairs. Index entries hold a
// bare string instead of an object.
func summarize(value []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(value, &fields); err != nil {
		return string(value)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := fmt.Sprintf("%v", fields[k])
		if k == "password_hash" || k == "code" || k == "icon" {
			v = "<redacted>"
		}
		if len(v) > 40 {
			v = v[:40] + "…"
		}
		fmt.Fprintf(&b, "%s=%s ", k, v)
	}
	return strings.TrimSpace(b.String())
}
