// Command hlsparse parses an HLS manifest and prints a summary or a JSON
// dump of the resulting playlist structure. It is the only part of this
// repository that performs I/O: the parser itself stays a pure function
// of its input bytes.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arsovski/hlsparse/internal/cache"
	"github.com/arsovski/hlsparse/internal/config"
	"github.com/arsovski/hlsparse/internal/resolve"
	"github.com/arsovski/hlsparse/internal/telemetry"
	"github.com/arsovski/hlsparse/pkg/hls"
)

var (
	cfgFile  string
	baseURL  string
	jsonOut  bool
	yamlOut  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hlsparse [file]",
		Short: "Parse an HLS/M3U8 manifest and print its structure",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "resolve relative URIs in the playlist against this base")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the full parsed playlist as JSON")
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "print the full parsed playlist as YAML")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	metrics := telemetry.NewMetrics()
	requestID := uuid.New().String()
	log := logger.WithField("request_id", requestID)

	var reader io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()
		reader = f
	}

	limited := io.LimitReader(reader, cfg.Parser.MaxInputBytes+1)
	buf, err := io.ReadAll(limited)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	if int64(len(buf)) > cfg.Parser.MaxInputBytes {
		return fmt.Errorf("manifest exceeds configured max of %d bytes", cfg.Parser.MaxInputBytes)
	}
	if cfg.Parser.StrictHeader && !hasM3UHeader(buf) {
		return fmt.Errorf("manifest does not start with #EXTM3U and parser.strict_header is set")
	}

	var playlistCache cache.Cache
	if cfg.Cache.Enabled {
		playlistCache = cache.NewCache(cache.Options{
			MaxSize:   cfg.Cache.MaxSize,
			ShardSize: cfg.Cache.ShardSize,
		})
	}

	playlist, cacheHit, err := parseWithCache(buf, playlistCache, cfg, metrics)
	if err != nil {
		metrics.IncCounter("parse_failures")
		log.Error("parse failed", "error", err)
		return err
	}
	metrics.IncCounter("parses_total")
	log.Info("parsed manifest", "segments", len(playlist.Segments), "variants", len(playlist.Variants), "cache_hit", cacheHit)

	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("invalid --base-url: %w", err)
		}
		if err := resolve.NewResolver(u).Resolve(playlist); err != nil {
			return fmt.Errorf("resolve URIs: %w", err)
		}
	}

	switch {
	case jsonOut:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(playlist)
	case yamlOut:
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(playlist)
	default:
		printSummary(playlist)
	}
	return nil
}

func parseWithCache(buf []byte, c cache.Cache, cfg *config.Config, metrics telemetry.Metrics) (*hls.Playlist, bool, error) {
	var key cache.Key
	if c != nil {
		key = cache.FromContent(buf)
		if v, ok := c.Get(key); ok {
			metrics.IncCounter("cache_hits")
			return v.(*hls.Playlist), true, nil
		}
		metrics.IncCounter("cache_misses")
	}

	start := time.Now()
	playlist, err := hls.ParseBytes(buf)
	metrics.ObserveOriginDuration("parse", time.Since(start))
	if err != nil {
		return nil, false, err
	}

	if c != nil {
		ttl, terr := time.ParseDuration(cfg.Cache.TTL)
		if terr != nil {
			ttl = 0
		}
		c.Set(key, playlist, ttl)
	}
	return playlist, false, nil
}

func hasM3UHeader(buf []byte) bool {
	for _, ln := range strings.Split(string(buf), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		return ln == "#EXTM3U"
	}
	return false
}

func printSummary(p *hls.Playlist) {
	if p.IsMaster() {
		fmt.Printf("master playlist: %d variant(s), %d i-frame variant(s), %d media rendition(s)\n",
			len(p.Variants), len(p.IFrameVariants), len(p.Media))
		for _, v := range p.Variants {
			fmt.Printf("  bandwidth=%d resolution=%s codecs=%s uri=%s\n", v.Bandwidth, v.Resolution, v.Codecs, v.URI)
		}
		return
	}
	fmt.Printf("media playlist: target_duration=%d version=%d endlist=%v segments=%d\n",
		p.TargetDuration, p.Version, p.IsEndlist, len(p.Segments))
	for i, s := range p.Segments {
		fmt.Printf("  [%d] duration=%.3f uri=%s\n", i, s.Duration, s.URI)
	}
}
