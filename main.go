/*
Copyright © 2026 The PromptLoom Authors
*/
package main

import "github.com/promptloom/loomgen/cmd"

func main() {
	cmd.Execute()
}
