package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configHeader = `# hocwrap configuration.
# Each target names a dialog component file (relative to root) and the
# module string passed to the wrapper call.
`

const sampleTargets = `
# targets:
#   - path: src/components/hr/CreateEvaluationDialog.tsx
#     module: hr
`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default hocwrap.yaml configuration file",
		Long: `Create a hocwrap.yaml in the current working directory populated with the
current CLI defaults and a commented sample target so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			content, err := renderInitConfig(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("failed to render config file: %w", err)
			}

			if err := writeNewFile(targetPath, content); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

// renderInitConfig serialises settings without the empty target list and
// appends a commented example in its place.
func renderInitConfig(settings map[string]any) ([]byte, error) {
	delete(settings, targetsConfigKey)

	var buf bytes.Buffer

	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(settings); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	buf.WriteString(sampleTargets)

	return buf.Bytes(), nil
}

func writeNewFile(path string, content []byte) (err error) {
	// #nosec G302 G304 - config file in the working directory
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, f.Close())
	}()

	_, err = f.Write(content)

	return err
}

func init() {
	rootCmd.AddCommand(initCmd)
}
