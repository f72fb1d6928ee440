package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/joshrotenberg/docker-wrapper-sub000/docker"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/config"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/logfile"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/mcp"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/preflight"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/scaffold"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:          "docker-wrapper",
		Short:        "Typed wrapper around the docker CLI",
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().String("docker", "", "docker binary name or path (overrides config)")
	root.PersistentFlags().Duration("timeout", 0, "timeout for each docker invocation (overrides config)")

	root.AddCommand(initCmd())
	root.AddCommand(doctorCmd())
	root.AddCommand(versionCmd())
	root.AddCommand(psCmd())
	root.AddCommand(imagesCmd())
	root.AddCommand(pullCmd())
	root.AddCommand(pruneCmd())
	root.AddCommand(mcpCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds a docker client from the config file plus any flag
// overrides. Flags win over config values.
func newClient(cmd *cobra.Command) (*docker.Client, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("reading --config flag: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	opts := cfg.ClientOptions()

	if bin, err := cmd.Flags().GetString("docker"); err != nil {
		return nil, fmt.Errorf("reading --docker flag: %w", err)
	} else if bin != "" {
		opts = append(opts, docker.WithBinary(bin))
	}

	if timeout, err := cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, fmt.Errorf("reading --timeout flag: %w", err)
	} else if timeout > 0 {
		opts = append(opts, docker.WithTimeout(timeout))
	}

	return docker.New(opts...), nil
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a " + config.DefaultPath + " config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("reading --config flag: %w", err)
			}
			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return fmt.Errorf("reading --yes flag: %w", err)
			}

			opts := scaffold.DefaultOptions()
			if !yes {
				if err := scaffold.Prompt(&opts); err != nil {
					return err
				}
			}

			if err := scaffold.Generate(path, opts); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "skip prompts and write defaults")
	return cmd
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that docker is installed and the daemon responds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := preflight.Check(cmd.Context(), client); err != nil {
				return err
			}
			fmt.Println("ok:", preflight.Describe(cmd.Context(), client))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show docker client and server versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			out, err := client.Version().WithFormat("json").Run(cmd.Context())
			if err != nil {
				return err
			}

			if out.Version == nil {
				fmt.Print(out.Stdout)
				return nil
			}

			fmt.Printf("Client: %s (API %s, %s/%s)\n",
				out.Version.Client.Version, out.Version.Client.APIVersion,
				out.Version.Client.Os, out.Version.Client.Arch)
			if out.Version.Server.Version != "" {
				fmt.Printf("Server: %s (API %s)\n",
					out.Version.Server.Version, out.Version.Server.APIVersion)
			}
			return nil
		},
	}
}

func psCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ps",
		Short: "List containers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ps := client.Ps()
			if all, err := cmd.Flags().GetBool("all"); err != nil {
				return fmt.Errorf("reading --all flag: %w", err)
			} else if all {
				ps.WithAll()
			}

			out, err := ps.Run(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CONTAINER ID\tIMAGE\tSTATE\tSTATUS\tNAMES")
			for _, c := range out.Containers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Image, c.State, c.Status, c.Names)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolP("all", "a", false, "include stopped containers")
	return cmd
}

func imagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images [repository]",
		Short: "List images",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			images := client.Images(args...)
			if all, err := cmd.Flags().GetBool("all"); err != nil {
				return fmt.Errorf("reading --all flag: %w", err)
			} else if all {
				images.WithAll()
			}

			out, err := images.Run(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REPOSITORY\tTAG\tIMAGE ID\tSIZE")
			for _, img := range out.Images {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", img.Repository, img.Tag, img.ID, img.Size)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolP("all", "a", false, "include intermediate images")
	return cmd
}

func pullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull IMAGE",
		Short: "Pull an image from a registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			pull := client.Pull(args[0])
			if platform, err := cmd.Flags().GetString("platform"); err != nil {
				return fmt.Errorf("reading --platform flag: %w", err)
			} else if platform != "" {
				pull.WithPlatform(platform)
			}

			out, err := pull.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Print(out.Stdout)
			if out.Digest != "" {
				fmt.Printf("Resolved digest: %s\n", out.Digest)
			}
			return nil
		},
	}
	cmd.Flags().String("platform", "", "target platform (e.g. linux/arm64)")
	return cmd
}

func pruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove unused docker data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("reading --force flag: %w", err)
			}
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return fmt.Errorf("reading --all flag: %w", err)
			}
			volumes, err := cmd.Flags().GetBool("volumes")
			if err != nil {
				return fmt.Errorf("reading --volumes flag: %w", err)
			}

			if !force {
				confirmed := false
				prompt := huh.NewConfirm().
					Title("Remove all unused docker data?").
					Description("This deletes stopped containers, dangling images, and unused networks.").
					Value(&confirmed)
				if err := prompt.Run(); err != nil {
					return fmt.Errorf("confirmation prompt: %w", err)
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			prune := client.SystemPrune()
			if all {
				prune.WithAll()
			}
			if volumes {
				prune.WithVolumes()
			}

			out, err := prune.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(out.Stdout)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "skip the confirmation prompt")
	cmd.Flags().BoolP("all", "a", false, "remove all unused images, not just dangling ones")
	cmd.Flags().Bool("volumes", false, "also prune anonymous volumes")
	return cmd
}

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve docker tools over MCP on stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			var audit *logfile.Writer
			if dir, err := cmd.Flags().GetString("audit-dir"); err != nil {
				return fmt.Errorf("reading --audit-dir flag: %w", err)
			} else if dir != "" {
				audit, err = logfile.New(dir)
				if err != nil {
					return fmt.Errorf("opening audit log: %w", err)
				}
				defer audit.Close()
				fmt.Fprintf(os.Stderr, "audit log: %s\n", audit.Path())
			}

			server := mcp.NewServer(client, audit, version)
			return server.Run(cmd.Context(), &sdkmcp.StdioTransport{})
		},
	}
	cmd.Flags().String("audit-dir", "", "directory for the JSONL audit log (empty disables auditing)")
	return cmd
}
