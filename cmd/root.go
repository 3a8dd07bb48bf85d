// Package cmd provides the root command and CLI setup for emsetup.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"emsetup.dev/pkg/emsetup/internal/adapter"
	"emsetup.dev/pkg/emsetup/internal/controller"
	"emsetup.dev/pkg/emsetup/internal/domain"
	m "emsetup.dev/pkg/emsetup/internal/model"
)

var fsAdapter adapter.FSAdapter
var commandRunner adapter.CommandRunner
var gpuProbe adapter.GPUProbe
var reportStore adapter.ReportStore
var provisioner domain.Provisioner
var inspector domain.Inspector
var workflow domain.Workflow
var ui controller.UI

var pythonFlag string
var venvDirFlag string
var clearFlag bool
var gpuFlag string
var indexURLFlag string
var layoutRootFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout) && !viper.GetBool(uiPlainKey))
	fsAdapter = adapter.NewLocalFSAdapter()
	commandRunner = adapter.NewLocalCommandRunner()
	gpuProbe = adapter.NewLocalGPUProbe(commandRunner)
	reportStore = adapter.NewReportStore(fsAdapter)
	provisioner = domain.NewProvisioner(fsAdapter, commandRunner, gpuProbe)
	inspector = domain.NewInspector(fsAdapter, commandRunner, gpuProbe)
	workflow = domain.NewWorkflow(reportStore, ui, provisioner, inspector)
}

const rootLongDescription = `emsetup prepares a sandbox for the energy monitoring tools.

Run without arguments it performs, in order, stopping at the first failure:
  1. create the Python virtual environment (energy_monitor_env)
  2. activate it for every later step
  3. upgrade pip inside it
  4. install requests, nvidia-ml-py3, pandas and matplotlib
  5. create energy_monitor/{logs,scripts,results}

Settings can be overridden with flags, an emsetup.yaml file or EMSETUP_* variables.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "emsetup",
		Short:         "Provision the energy monitor Python environment",
		Long:          rootLongDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configLoadErr != nil {
				return configLoadErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			args, err := provisionArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Provision(context.Background(), args)
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&pythonFlag, pythonFlagName, viper.GetString(pythonKey), "python runtime used to create the environment")
	bindFlagToConfig(flags.Lookup(pythonFlagName), pythonKey)

	flags.StringVar(&venvDirFlag, venvDirFlagName, viper.GetString(venvDirKey), "virtual environment directory")
	bindFlagToConfig(flags.Lookup(venvDirFlagName), venvDirKey)

	flags.BoolVar(&clearFlag, clearFlagName, viper.GetBool(venvClearKey), "wipe an existing virtual environment before creating it")
	bindFlagToConfig(flags.Lookup(clearFlagName), venvClearKey)

	flags.StringVar(&gpuFlag, gpuFlagName, viper.GetString(gpuPolicyKey), "GPU package policy: require, auto or skip")
	bindFlagToConfig(flags.Lookup(gpuFlagName), gpuPolicyKey)

	flags.StringVar(&indexURLFlag, indexURLFlagName, viper.GetString(indexURLKey), "package index URL (default: pip's own)")
	bindFlagToConfig(flags.Lookup(indexURLFlagName), indexURLKey)

	flags.StringVar(&layoutRootFlag, layoutRootFlagName, viper.GetString(layoutRootKey), "directory holding logs, scripts and results")
	bindFlagToConfig(flags.Lookup(layoutRootFlagName), layoutRootKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// The UI already reported the failing step and the tool's own output.
		var failure *domain.StepFailure
		if !errors.As(err, &failure) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}

		os.Exit(exitCode(err))
	}
}

// exitCode maps a failure to the process status: the failing step's own code when
// it has one, 1 otherwise.
func exitCode(err error) int {
	var failure *domain.StepFailure
	if errors.As(err, &failure) {
		return failure.ExitCode()
	}

	return 1
}

func provisionArgsFromConfig() (domain.ProvisionArgs, error) {
	policy, err := m.ParseGPUPolicy(viper.GetString(gpuPolicyKey))
	if err != nil {
		return domain.ProvisionArgs{}, err
	}

	args := domain.ProvisionArgs{
		Python:    strings.TrimSpace(viper.GetString(pythonKey)),
		VenvDir:   m.Path(strings.TrimSpace(viper.GetString(venvDirKey))),
		ClearVenv: viper.GetBool(venvClearKey),
		Packages:  m.BuildPackages(viper.GetStringSlice(packagesKey), viper.GetStringSlice(gpuPackagesKey)),
		GPUPolicy: policy,
		IndexURL:  strings.TrimSpace(viper.GetString(indexURLKey)),
		Layout:    layoutFromConfig(),
	}
	args.ReportPath = reportPathFromConfig(args.Layout)

	if args.Python == "" {
		return domain.ProvisionArgs{}, fmt.Errorf("%s must not be empty", pythonKey)
	}

	if args.VenvDir == "" {
		return domain.ProvisionArgs{}, fmt.Errorf("%s must not be empty", venvDirKey)
	}

	if args.Layout.Root == "" {
		return domain.ProvisionArgs{}, fmt.Errorf("%s must not be empty", layoutRootKey)
	}

	return args, nil
}

// statusArgsFromConfig expects the packages a provisioning run with the same
// GPU policy would have installed.
func statusArgsFromConfig() (domain.StatusArgs, error) {
	policy, err := m.ParseGPUPolicy(viper.GetString(gpuPolicyKey))
	if err != nil {
		return domain.StatusArgs{}, err
	}

	plan := provisioner.Plan(domain.ProvisionArgs{
		Packages:  m.BuildPackages(viper.GetStringSlice(packagesKey), viper.GetStringSlice(gpuPackagesKey)),
		GPUPolicy: policy,
	})
	layout := layoutFromConfig()

	return domain.StatusArgs{
		VenvDir:    m.Path(strings.TrimSpace(viper.GetString(venvDirKey))),
		Packages:   plan.Packages,
		Layout:     layout,
		ReportPath: reportPathFromConfig(layout),
	}, nil
}
