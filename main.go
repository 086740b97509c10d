// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "assetkit/cmd/assetkit"
)

func main() {
	cmd.Execute()
}
