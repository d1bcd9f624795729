// Planwire CLI - inspects and maintains the plan cache
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/planwire/manifest"
	"github.com/chazu/planwire/pkg/cache"
)

func main() {
	cachePath := flag.String("cache", "", "Plan cache path (default: from planwire.toml)")
	list := flag.Bool("list", false, "List cached plan keys")
	dump := flag.String("dump", "", "Write the encoded plan with the given hex key to stdout")
	remove := flag.String("delete", "", "Delete the plan with the given hex key")
	count := flag.Bool("count", false, "Print the number of cached plans")
	prune := flag.Int("prune", 0, "Evict the oldest plans beyond this entry count")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: planwire [options]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects the content-addressed plan cache.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  planwire -count                # Cache entry count\n")
		fmt.Fprintf(os.Stderr, "  planwire -list                 # All keys with metadata\n")
		fmt.Fprintf(os.Stderr, "  planwire -dump <key> > p.bin   # Raw encoded plan\n")
		fmt.Fprintf(os.Stderr, "  planwire -delete <key>         # Evict one plan\n")
		fmt.Fprintf(os.Stderr, "  planwire -prune 1000           # Keep only the 1000 newest\n")
	}
	flag.Parse()

	path := *cachePath
	if path == "" {
		m, err := manifest.FindAndLoad(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if m == nil {
			fmt.Fprintln(os.Stderr, "Error: no planwire.toml found and no -cache given")
			os.Exit(1)
		}
		m.ConfigureLogging()
		path = m.CachePath()
	}

	store, err := cache.NewStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *count:
		n, err := store.Len()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(n)

	case *list:
		entries, err := store.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, e := range entries {
			fmt.Printf("%s  %6d bytes  %s\n", e.Key, e.Meta.StreamLen, e.Meta.CreatedAt.Format("2006-01-02 15:04:05"))
		}

	case *dump != "":
		key, err := parseKey(*dump)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		body, _, err := store.Get(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(body)

	case *remove != "":
		key, err := parseKey(*remove)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := store.Delete(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *prune > 0:
		n, err := store.Prune(*prune)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("evicted %d plans\n", n)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func parseKey(s string) (cache.Key, error) {
	var key cache.Key
	raw, err := hex.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("bad key %q: %w", s, err)
	}
	if len(raw) != len(key) {
		return key, errors.New("key must be 64 hex digits")
	}
	copy(key[:], raw)
	return key, nil
}
