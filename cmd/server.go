/*
Copyright © 2023 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"pipguide/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the plate guidance server",
	Long: `Serves the host page with a plate in every configured container.
POST /plates/{plate}/wells/{well} with {"color": "..."} highlights a well;
browsers on the page follow along over a websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	page, err := server.LoadPage(cfg.Page, cfg.Containers)
	if err != nil {
		return err
	}
	srv, err := server.New(page, cfg)
	if err != nil {
		return err
	}

	log.Printf("connect to http://localhost:%s/ for the plate view", cfg.Port)
	return srv.ListenAndServe(":" + cfg.Port)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
