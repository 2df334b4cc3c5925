package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/juju/fslock"
)

const lockFileName = "ftairdropd.lock"

var (
	rtyAttNum = uint(5)
	rtyAtt    = retry.Attempts(rtyAttNum)
	rtyDel    = retry.Delay(time.Millisecond * 200)
	rtyErr    = retry.LastErrorOnly(true)
)

// lockHome takes the exclusive lock on the node data directory, waiting a
// little for a concurrent invocation to finish. The returned function
// releases the lock.
func lockHome(ctx context.Context, home string) (func() error, error) {
	lock := fslock.New(filepath.Join(dataDir(home), lockFileName))
	if err := retry.Do(lock.TryLock, retry.Context(ctx), rtyAtt, rtyDel, rtyErr); err != nil {
		return nil, fmt.Errorf("node home %s is in use: %w", home, err)
	}
	return lock.Unlock, nil
}
