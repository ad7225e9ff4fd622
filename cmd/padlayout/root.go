package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	structpad "github.com/ryanavella/struct-pad"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// settings is the resolved configuration of one invocation.
type settings struct {
	Format  string
	NoColor bool
	Verbose bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "padlayout",
		Short: "Print the layout of the structpad padding types",
		Long: `padlayout reports the size and alignment of every structpad padding type
on the target it was built for, together with the pointer and cache line sizes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			if v.GetBool("verbose") {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("creating logger: %w", err)
				}
				SetLogger(l)
			}
			Logger().Debug("configuration loaded",
				zap.String("command", cmd.Name()),
				zap.String("config", v.ConfigFileUsed()),
				zap.String("format", v.GetString("format")))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), s, newReport())
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	cmd.PersistentFlags().StringP("format", "f", formatText, "output format: text or yaml")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cobra.CheckErr(v.BindPFlags(cmd.PersistentFlags()))

	cmd.AddCommand(newCheckCmd(v))
	return cmd
}

// initConfig reads in the config file and environment variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("PADLAYOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	return nil
}

var errFormat = errors.New("unknown output format")

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Format:  strings.ToLower(v.GetString("format")),
		NoColor: v.GetBool("no-color"),
		Verbose: v.GetBool("verbose"),
	}
	switch s.Format {
	case formatText, formatYAML:
	default:
		return s, fmt.Errorf("%w %q", errFormat, s.Format)
	}
	return s, nil
}

// report is the serialized form of the layout table.
type report struct {
	GOOS          string `yaml:"goos"`
	GOARCH        string `yaml:"goarch"`
	PtrSize       int    `yaml:"ptr_size"`
	CacheLineSize int    `yaml:"cache_line_size"`
	Types         []row  `yaml:"types"`
}

type row struct {
	Name        string `yaml:"name"`
	Size        int    `yaml:"size"`
	Align       int    `yaml:"align"`
	OptionSize  int    `yaml:"option_size"`
	OptionAlign int    `yaml:"option_align"`
	ZeroBits    bool   `yaml:"zero_bits"`
	err         error
}

func newReport() report {
	r := report{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		PtrSize:       structpad.PtrSize,
		CacheLineSize: int(structpad.CacheLineSize),
	}
	for _, l := range structpad.Layouts() {
		r.Types = append(r.Types, row{
			Name:        l.Name,
			Size:        int(l.Size),
			Align:       int(l.Align),
			OptionSize:  int(l.OptionSize),
			OptionAlign: int(l.OptionAlign),
			ZeroBits:    l.ZeroBits,
			err:         l.Check(),
		})
	}
	return r
}
