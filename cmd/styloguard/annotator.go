// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/styloguard/internal/sidecar"
)

var annotatorCmd = &cobra.Command{
	Use:   "annotator",
	Short: "Run the remote annotation service in a local container",
	Long: `Annotator starts or stops the annotation service used by the remote
annotator backend. Docker is preferred; Podman is used when Docker is not
available. Point annotator.endpoint at the printed URL and set
annotator.backend to remote.

The image is not built by styloguard. It must serve POST /annotate on
annotator.port, accepting {"text": "..."} and answering with a JSON
annotated document (tokens, sentences, noun_chunks, entities).`,
}

var annotatorStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the annotation service container",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig()
		if err != nil {
			return err
		}
		rt, err := sidecar.DetectRuntime()
		if err != nil {
			return err
		}
		if err := rt.ImageExists(cfg.Annotator.Image); err != nil {
			return fmt.Errorf("%w (pull or build it first)", err)
		}
		id, err := rt.Start(sidecar.Spec{Image: cfg.Annotator.Image, Port: cfg.Annotator.Port})
		if err != nil {
			return err
		}
		fmt.Printf("started %s container %s\n", rt.Name(), id)
		fmt.Printf("endpoint: %s\n", sidecar.Endpoint(cfg.Annotator.Port))
		return nil
	},
}

var annotatorStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the annotation service container",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sidecar.DetectRuntime()
		if err != nil {
			return err
		}
		if err := rt.Stop(sidecar.DefaultName); err != nil {
			return err
		}
		fmt.Println("stopped", sidecar.DefaultName)
		return nil
	},
}

func init() {
	annotatorCmd.AddCommand(annotatorStartCmd)
	annotatorCmd.AddCommand(annotatorStopCmd)
	rootCmd.AddCommand(annotatorCmd)
}
