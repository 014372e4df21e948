package config

import "time"

type ctxKey string

const (
	UidKey ctxKey = "uid"
	IpKey  ctxKey = "ip"
	UaKey  ctxKey = "ua"
)

const (
	DefaultCacheTime    = time.Hour
	MinCacheTime        = time.Minute * 5
	DefaultNearbyRadius = 1000.0
	MaxNearbyRadius     = 50_000.0
)

const (
	AccessCookieName    = "access"
	AccessTokenDuration = time.Minute * 30
)

const ErrorSpanTag = "error"
