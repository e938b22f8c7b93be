package cli

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/rodnney/biotech-x/internal/config"
	"github.com/rodnney/biotech-x/internal/version"
)

// AppName is printed by -help and -version.
const AppName = "Biotech-X"

// ServerFlags holds the command-line flags shared by both services. Empty
// values leave the environment, YAML or default value in place.
type ServerFlags struct {
	// Service the flags were parsed for
	Service config.Service

	// Server configuration flags
	Port        string
	Environment string
	LogLevel    string
	APIURL      string
	ConfigFile  string

	// General flags
	Help    bool
	Version bool
}

// Parse parses args (without the program name) for service.
func Parse(service config.Service, args []string, output io.Writer) (*ServerFlags, error) {
	f := &ServerFlags{Service: service}

	fs := flag.NewFlagSet("biotech-x-"+string(service), flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (default: %s)", defaultPort(service)))
	fs.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment label (default: %s)", config.DefaultEnvironment))
	fs.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s (default: %s)", strings.Join(config.ValidLogLevels, ", "), config.DefaultLogLevel))
	fs.StringVar(&f.ConfigFile, "config", "",
		fmt.Sprintf("Path to the YAML config file (default: %s)", config.DefaultConfigFile))
	if service == config.ServiceFrontend {
		fs.StringVar(&f.APIURL, "api-url", "",
			fmt.Sprintf("Backend base address checked by the status panel (default: %s)", config.DefaultAPIURL))
	}

	fs.BoolVar(&f.Help, "help", false, "Show help information and exit")
	fs.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	fs.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return f, f.validate()
}

func defaultPort(service config.Service) string {
	if service == config.ServiceFrontend {
		return config.DefaultFrontendPort
	}
	return config.DefaultAPIPort
}

// validate rejects flag values that can never be valid. Values resolved
// from other sources are checked by config.Validate.
func (f *ServerFlags) validate() error {
	if f.LogLevel != "" && !slices.Contains(config.ValidLogLevels, f.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", f.LogLevel, strings.Join(config.ValidLogLevels, ", "))
	}
	return nil
}

// ShowHelp writes usage information for the service.
func (f *ServerFlags) ShowHelp(w io.Writer) {
	name := "biotech-x-" + string(f.Service)

	fmt.Fprintf(w, "%s %s\n\n", AppName, f.Service)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintf(w, "  %s [flags]\n\n", name)
	fmt.Fprintln(w, "FLAGS:")
	fmt.Fprintf(w, "  -port string        Server port (default: %s)\n", defaultPort(f.Service))
	fmt.Fprintf(w, "  -env string         Environment label (default: %s)\n", config.DefaultEnvironment)
	fmt.Fprintf(w, "  -log-level string   Log level: %s (default: %s)\n", strings.Join(config.ValidLogLevels, ", "), config.DefaultLogLevel)
	fmt.Fprintf(w, "  -config string      YAML config file (default: %s)\n", config.DefaultConfigFile)
	if f.Service == config.ServiceFrontend {
		fmt.Fprintf(w, "  -api-url string     Backend base address (default: %s)\n", config.DefaultAPIURL)
	}
	fmt.Fprintln(w, "  -help, -h           Show this help information")
	fmt.Fprintln(w, "  -version, -v        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables PORT, ENVIRONMENT, LOG_LEVEL, API_URL, HEALTH_MESSAGE,")
	fmt.Fprintln(w, "STATUS_TIMEOUT, CORS_ALLOW_ORIGINS and REDIS_* override the config file;")
	fmt.Fprintln(w, "flags override both.")
}

// ShowVersion writes version and build information.
func (f *ServerFlags) ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s %s\n", AppName, f.Service, version.GetVersion())
	fmt.Fprintf(w, "Build info: %s\n", version.GetBuildInfo())
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
}

// config.Flags implementation

func (f *ServerFlags) GetPort() string        { return f.Port }
func (f *ServerFlags) GetEnvironment() string { return f.Environment }
func (f *ServerFlags) GetLogLevel() string    { return f.LogLevel }
func (f *ServerFlags) GetAPIURL() string      { return f.APIURL }
func (f *ServerFlags) GetConfigFile() string  { return f.ConfigFile }
