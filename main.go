// Command gocbc encrypts and decrypts strings with AES-CBC and generates keys and IVs.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/gocbc/internal/commands"
)

// version indicates the build version, set during compilation.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := commands.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		os.Exit(1)
	}
}
