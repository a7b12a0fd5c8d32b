package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/HamMeyva/challenge-engine/internal/observability/tracing"
)

// CreditPurchaseCmd books purchased coins to a wallet. The reference is the
// payment provider's order id; booking the same reference twice is rejected.
// Usage: ./challenge-engine credit-purchase <userID> <coins> <reference> --config config.yml
func CreditPurchaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit-purchase [userID] [coins] [reference]",
		Short: "Credit purchased coins to a user's spendable balance",
		Args:  cobra.ExactArgs(3),
		RunE:  creditPurchase,
	}

	return cmd
}

func creditPurchase(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	coins, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid coin amount %q: %w", args[1], err)
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.service.CreditPurchase(ctx, args[0], coins, args[2]); err != nil {
		return err
	}

	fmt.Printf("Credited %d coins to %s\n", coins, args[0])
	return nil
}
