package bench

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPHPScriptAdapter_ShimWiring(t *testing.T) {
	var scriptPath string
	runner := &fakeRunner{
		respond: func(call int, argv []string) error {
			require.Len(t, argv, 3)
			require.Equal(t, "/usr/bin/php", argv[0])
			require.Equal(t, "/proj/vendor/autoload.php", argv[2])

			scriptPath = argv[1]
			require.Equal(t, ".php", filepath.Ext(scriptPath))
			data, err := os.ReadFile(scriptPath)
			require.NoError(t, err)
			require.Contains(t, string(data), `use Gregwar\RST\Parser;`)
			require.Contains(t, string(data), "php://stdin")
			return nil
		},
	}

	a := &phpScriptAdapter{
		tool:       "Gregwar/RST",
		php:        "/usr/bin/php",
		autoloader: "/proj/vendor/autoload.php",
		input:      "Heading\n=======\n",
		iterations: 2,
		warmup:     1,
		run:        runner,
	}
	out := a.Measure(context.Background())

	require.True(t, out.Succeeded(), "outcome error: %s", out.Err)
	require.Len(t, runner.calls, 3)
	for _, stdin := range runner.stdins {
		require.True(t, strings.HasPrefix(stdin, "Heading\n"))
	}

	_, err := os.Stat(scriptPath)
	require.True(t, os.IsNotExist(err), "shim file must be removed after the run")
}

func TestPHPScriptAdapter_Failure(t *testing.T) {
	runner := &fakeRunner{
		respond: func(call int, argv []string) error {
			return errors.New("PHP Fatal error: Uncaught Error")
		},
	}
	a := &phpScriptAdapter{
		tool:       "Gregwar/RST",
		php:        "php",
		autoloader: "autoload.php",
		input:      "x\n",
		iterations: 3,
		warmup:     0,
		run:        runner,
	}
	out := a.Measure(context.Background())

	require.False(t, out.Succeeded())
	require.Contains(t, out.Err, "PHP Fatal error")
	require.Len(t, runner.calls, 1)
}
