// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-settlement/app"
	"github.com/sprintertech/sprinter-settlement/observability"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

var previewCMD = &cobra.Command{
	Use:   "preview",
	Short: "Preview a settlement",
	Long:  "Select the strategy for a settlement and print its fees and expected output without moving funds",
	RunE:  preview,
}

var previewFlags struct {
	source    string
	dest      string
	token     string
	destToken string
	amount    string
	recipient string
	sender    string
}

func init() {
	previewCMD.Flags().StringVar(&previewFlags.source, "source", "", "source chain")
	previewCMD.Flags().StringVar(&previewFlags.dest, "dest", "", "destination chain")
	previewCMD.Flags().StringVar(&previewFlags.token, "token", "", "source token symbol, USDC if empty")
	previewCMD.Flags().StringVar(&previewFlags.destToken, "dest-token", "", "destination token symbol, source token if empty")
	previewCMD.Flags().StringVar(&previewFlags.amount, "amount", "", "amount in token units")
	previewCMD.Flags().StringVar(&previewFlags.recipient, "recipient", "", "recipient address")
	previewCMD.Flags().StringVar(&previewFlags.sender, "sender", "", "sender address")
	_ = previewCMD.MarkFlagRequired("source")
	_ = previewCMD.MarkFlagRequired("dest")
	_ = previewCMD.MarkFlagRequired("amount")
}

func preview(cmd *cobra.Command, args []string) error {
	configuration, err := app.LoadConfig()
	if err != nil {
		return err
	}
	observability.ConfigureLogger("error", cmd.ErrOrStderr())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	engine, err := app.NewEngine(ctx, configuration, nil)
	if err != nil {
		return err
	}

	result := engine.Router.Preview(ctx, &settlement.SettlementRequest{
		SourceChain: previewFlags.source,
		DestChain:   previewFlags.dest,
		SourceToken: previewFlags.token,
		DestToken:   previewFlags.destToken,
		Amount:      previewFlags.amount,
		Recipient:   previewFlags.recipient,
		Sender:      previewFlags.sender,
	})

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !result.Success {
		return fmt.Errorf("preview failed: %s", result.ErrorReason)
	}
	return nil
}
