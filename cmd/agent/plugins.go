package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewPluginsCmd 列出已注册的插件
func NewPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "列出可用插件",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Name", "Description"}}
			for _, name := range rt.registry.Names() {
				p, err := rt.registry.Get(name)
				if err != nil {
					return err
				}
				data = append(data, []string{name, p.Description()})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}
