package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ws396/wmacalc/internal/analysis"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/output"
	"github.com/ws396/wmacalc/internal/util"
	"github.com/ws396/wmacalc/internal/wma"
)

type ViewNode struct {
	view   func(*CLI) string
	action func(*CLI) *ViewNode
}

var (
	root   *ViewNode
	root_1 *ViewNode
	root_2 *ViewNode
	root_3 *ViewNode
	root_4 *ViewNode
)

func init() {
	root = &ViewNode{
		view: func(m *CLI) string {
			mode := "float64"
			if m.decimal {
				mode = "decimal"
			}

			return fmt.Sprint(
				"WMACALC", "\n",
				"Prices: ", listOrNone(m.Prices), "\n",
				"Weights: ", listOrNone(m.Weights), "\n",
				"Arithmetic: ", mode, "\n\n",
				"1) Set prices", "\n",
				"2) Set weights", "\n",
				"3) Use linear weights", "\n",
				"4) Calculate", "\n",
				"5) Load sample", "\n",
				"6) Toggle decimal arithmetic", "\n",
				"7) Quit",
			)
		},
		action: func(m *CLI) *ViewNode {
			switch strings.TrimSpace(m.textInput.Value()) {
			case "1":
				return root_1
			case "2":
				return root_2
			case "3":
				return root_3
			case "4":
				if len(m.Prices) == 0 {
					m.HandleError(globals.ErrNoPrices)
					return nil
				}
				if len(m.Weights) == 0 {
					m.HandleError(globals.ErrNoWeights)
					return nil
				}

				a, err := analysis.CreateAnalysis(m.Prices, m.Weights, m.decimal)
				if err != nil {
					m.HandleError(err)
					return nil
				}

				m.Result = a
				return root_4
			case "5":
				m.Prices = append([]float64(nil), globals.SamplePrices...)
				m.Weights = append([]float64(nil), globals.SampleWeights...)
				m.info = "Sample loaded"
			case "6":
				m.decimal = !m.decimal
			case "7":
				m.quitting = true
			default:
				m.info = "Invalid choice"
			}

			return nil
		},
	}

	root_1 = &ViewNode{
		view: func(m *CLI) string {
			return fmt.Sprint(
				"Current prices: ", listOrNone(m.Prices), "\n",
				"Enter new prices (ex. 100,102,101,105,107,110):",
			)
		},
		action: func(m *CLI) *ViewNode {
			prices, err := util.ParseFloats(m.textInput.Value())
			if err != nil {
				m.HandleError(err)
				return nil
			}
			if len(prices) == 0 {
				m.HandleError(globals.ErrNoPrices)
				return nil
			}

			m.Prices = prices
			return root
		},
	}

	root_2 = &ViewNode{
		view: func(m *CLI) string {
			return fmt.Sprint(
				"Current weights: ", listOrNone(m.Weights), "\n",
				"Enter new weights, oldest price first (ex. 1,2,3):",
			)
		},
		action: func(m *CLI) *ViewNode {
			weights, err := util.ParseFloats(m.textInput.Value())
			if err != nil {
				m.HandleError(err)
				return nil
			}
			if _, err := wma.Normalize(weights); err != nil {
				m.HandleError(err)
				return nil
			}

			m.Weights = weights
			return root
		},
	}

	root_3 = &ViewNode{
		view: func(m *CLI) string {
			return fmt.Sprint("Enter the window length (ex. 3 gives weights 1,2,3):")
		},
		action: func(m *CLI) *ViewNode {
			window, err := strconv.Atoi(strings.TrimSpace(m.textInput.Value()))
			if err != nil || window <= 0 {
				m.HandleError(globals.ErrBadWindow)
				return nil
			}

			m.Weights = wma.LinearWeights(window)
			return root
		},
	}

	root_4 = &ViewNode{
		view: func(m *CLI) string {
			return fmt.Sprint(
				output.Render(m.Result, m.S.Precision), "\n\n",
				"Press Enter to go back to root.",
			)
		},
		action: func(m *CLI) *ViewNode {
			return root
		},
	}
}

func listOrNone(values []float64) string {
	if len(values) == 0 {
		return "none"
	}

	return fmt.Sprint(values)
}
