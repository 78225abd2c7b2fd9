package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lpda/pkg/wire"
)

// stockCommand creates the stock command, which shows how each element's
// ideal diameter maps onto the stock list.
func (c *CLI) stockCommand() *cobra.Command {
	var design designFlags

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Show ideal vs. stock wire diameters per element pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStock(cmd, &design)
		},
	}

	design.register(cmd)
	return cmd
}

func (c *CLI) runStock(cmd *cobra.Command, design *designFlags) error {
	opts, err := design.options(cmd.Flags())
	if err != nil {
		return err
	}

	d, err := c.newRunner().Dimensions(cmd.Context(), opts.Params)
	if err != nil {
		return err
	}

	stock := d.Params.Stock
	lo, hi := stock[0], stock[0]
	for _, s := range stock {
		lo, hi = min(lo, s), max(hi, s)
	}

	fmt.Fprintln(c.Stdout, StyleTitle.Render("Stock diameters (in)"))
	for i, s := range stock {
		printKeyValue(c.Stdout, "#"+strconv.Itoa(i+1), num(s))
	}
	fmt.Fprintln(c.Stdout)

	pairs := d.Inches()
	rows := make([][]string, len(pairs))
	var outside []int
	for i, e := range pairs {
		snapped, err := wire.SelectDiameter(e.Diameter, stock)
		if err != nil {
			return err
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.4f", e.Diameter),
			num(snapped),
			fmt.Sprintf("%+.1f%%", 100*(snapped-e.Diameter)/e.Diameter),
		}
		if e.Diameter < lo || e.Diameter > hi {
			outside = append(outside, i+1)
		}
	}

	fmt.Fprintln(c.Stdout, StyleTitle.Render("Element diameters (in)"))
	printTable(c.Stdout, []string{"#", "Ideal", "Stock", "Error"}, rows)

	if len(outside) > 0 {
		fmt.Fprintln(c.Stdout)
		printWarning(c.Stdout, "%d of %d pairs fall outside the stock range %s–%s in (pairs %v)",
			len(outside), d.NumElementPairs(), num(lo), num(hi), outside)
	}
	return nil
}
