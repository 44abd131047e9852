// cmd/storefrontctl/main.go
package main

import "github.com/javajoker/storefront-backend/cmd/storefrontctl/commands"

func main() {
	commands.Execute()
}
