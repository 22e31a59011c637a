// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-settlement/app"
)

var runCMD = &cobra.Command{
	Use:   "run",
	Short: "Run settlement engine",
	Long:  "Run settlement engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}
