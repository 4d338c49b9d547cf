package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gofrs/uuid"
)

var (
	idNode     *snowflake.Node
	idNodeOnce sync.Once
)

// InitIDs sets the snowflake node used for record ids
func InitIDs(nodeID int64) error {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("invalid node id %d: %w", nodeID, err)
	}
	idNode = node
	return nil
}

// NewID returns a new timestamp-based record id
func NewID() string {
	idNodeOnce.Do(func() {
		if idNode == nil {
			idNode, _ = snowflake.NewNode(1)
		}
	})
	return idNode.Generate().String()
}

// NewSessionID returns a random admin session id
func NewSessionID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// NewOrderID returns ids like ORD-1718000000000-k3j9x0a
func NewOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:7]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// NewOrderNumber returns the customer facing order number, e.g. HD-004213
func NewOrderNumber() string {
	return fmt.Sprintf("HD-%06d", rand.Intn(100000))
}

// GenerateSKU builds HD-<last 6 timestamp digits>-<3 random digits>
func GenerateSKU(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return fmt.Sprintf("HD-%s-%03d", ts, rand.Intn(1000))
}
