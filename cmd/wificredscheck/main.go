// Command wificredscheck inspects a Wi-Fi credential table without ever
// printing a password. It loads the table from the environment (inline JSON
// or a secrets file), reports each set's validity, resolves the requested
// network, and exits 0 when the resolved credential set is usable.
package main

import (
	"log/slog"
	"os"

	"github.com/me-RK/wificreds"
	"github.com/me-RK/wificreds/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var table []wificreds.CredentialSet
	if cfg.TableJSON != "" {
		table, err = wificreds.ParseTable([]byte(cfg.TableJSON))
	} else {
		table, err = wificreds.LoadTable(cfg.TablePath)
	}
	if err != nil {
		return err
	}

	reg := wificreds.FromTable(table)

	defaultName, _ := reg.DefaultName()
	slog.Info("credential table loaded",
		"sets", reg.Count(),
		"default", defaultName,
	)

	for i := 0; i < reg.Count(); i++ {
		name, _ := reg.CredentialName(i)
		slog.Info("credential set",
			"name", name,
			"ssid_length", reg.SSIDLength(name),
			"password_length", reg.PasswordLength(name),
			"valid", reg.IsValid(name),
		)
	}

	ssid, ok := reg.SSID(cfg.Network)
	if !ok {
		slog.Error("credential table is empty")
		os.Exit(1)
	}

	slog.Info("resolved network",
		"requested", cfg.Network,
		"matched", reg.Has(cfg.Network),
		"ssid", ssid,
	)

	if !reg.IsValid(cfg.Network) {
		slog.Error("resolved credential set is not usable", "ssid", ssid)
		os.Exit(1)
	}

	return nil
}
