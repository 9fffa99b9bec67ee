// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/sitemod/cmd/sitemod/cmd"
)

func main() {
	cmd.Execute()
}
