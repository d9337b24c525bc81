package main

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/nscache"
	"github.com/unkn0wn-root/nscache/codec"
	zaplog "github.com/unkn0wn-root/nscache/log/zap"
	redisstore "github.com/unkn0wn-root/nscache/store/redis"
)

var (
	cacheRedisAddr string
	cachePrefix    string
	cacheTTL       time.Duration
	cacheVerbose   bool
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Operate on a namespaced cache",
	Long: `Operate on a namespaced cache backed by Redis.

Keys are grouped into namespaces; del-ns invalidates a whole namespace in one
O(1) epoch rotation without touching individual entries.`,
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheRedisAddr, "redis", "localhost:6379", "redis address")
	cacheCmd.PersistentFlags().StringVar(&cachePrefix, "prefix", "nscache", "physical key prefix")
	cacheCmd.PersistentFlags().DurationVar(&cacheTTL, "ttl", 0, "entry TTL (0 = facade default, 24h)")
	cacheCmd.PersistentFlags().BoolVar(&cacheVerbose, "verbose", false, "debug logging")

	cacheCmd.AddCommand(
		&cobra.Command{
			Use:   "get <namespace> <key>",
			Short: "Read a value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, cleanup, err := openCache()
				if err != nil {
					return err
				}
				defer cleanup()
				v, ok, err := c.Get(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("miss: %s/%s", args[0], args[1])
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <namespace> <key> <value>",
			Short: "Write a value",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, cleanup, err := openCache()
				if err != nil {
					return err
				}
				defer cleanup()
				return c.Set(cmd.Context(), args[0], args[1], args[2], cacheTTL)
			},
		},
		&cobra.Command{
			Use:   "del <namespace> <key>",
			Short: "Delete one entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, cleanup, err := openCache()
				if err != nil {
					return err
				}
				defer cleanup()
				return c.Delete(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "del-ns <namespace>",
			Short: "Invalidate a whole namespace",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, cleanup, err := openCache()
				if err != nil {
					return err
				}
				defer cleanup()
				return c.DeleteNamespace(cmd.Context(), args[0])
			},
		},
	)
}

func openCache() (nscache.Cache[string], func(), error) {
	st, err := redisstore.New(redisstore.Config{
		Client:      goredis.NewClient(&goredis.Options{Addr: cacheRedisAddr}),
		CloseClient: true,
	})
	if err != nil {
		return nil, nil, err
	}

	var logger nscache.Logger = nscache.NopLogger{}
	var zl *zap.Logger
	if cacheVerbose {
		zl, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		logger = zaplog.ZapLogger{L: zl}
	}

	c, err := nscache.New[string](nscache.Options[string]{
		Store:  st,
		Codec:  codec.String{},
		Prefix: cachePrefix,
		Logger: logger,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = c.Close(context.Background())
		if zl != nil {
			_ = zl.Sync()
		}
	}
	return c, cleanup, nil
}
