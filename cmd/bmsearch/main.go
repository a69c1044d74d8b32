// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package main

import "github.com/nekitakamenev/boyermoore/cmd/bmsearch/cmd"

func main() {
	cmd.Execute()
}
