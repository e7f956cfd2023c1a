// Package convert exposes the measurement engine as a CLI command for
// ad-hoc lines, without any fetching or storage involved.
package convert

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cookparse/cookparse/pkg/convert"
	"github.com/urfave/cli/v2"
)

func ConvertAction(c *cli.Context) error {
	ingredients := c.StringSlice("ingredient")
	instructions := c.StringSlice("instruction")

	if len(ingredients) == 0 && len(instructions) == 0 {
		// No flags: treat each stdin line as an ingredient.
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			fmt.Println(convert.AnnotateIngredient(scanner.Text()))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return nil
	}

	for _, line := range ingredients {
		fmt.Println(convert.AnnotateIngredient(line))
	}
	for _, line := range instructions {
		fmt.Println(convert.AnnotateTemperatures(line))
	}
	return nil
}
