package custody

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// SignBatch signs every record with the same private key using up to workers goroutines.
//
// signatures[i] is the signature of records[i]. The first failure cancels the remaining work and is returned
// with the index of the failing record. workers < 1 is treated as 1.
func SignBatch(ctx context.Context, privateKeyHex string, records []TransferRecord, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}

	privateKey, err := crypto.PrivateKeyFromHex(privateKeyHex)
	if err != nil {
		return nil, err
	}

	signatures := make([]string, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			signature, err := signRecord(privateKey, rec)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			signatures[i] = signature
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return signatures, nil
}
