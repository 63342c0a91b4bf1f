package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so single, cluster and sentinel
// deployments are interchangeable for the repositories
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys
const Nil = redis.Nil

// TxFailedErr is returned when a watched key changed before EXEC
var TxFailedErr = redis.TxFailedErr
