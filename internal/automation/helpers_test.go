package automation

import "github.com/san-kum/quadlab/internal/config"

func stepConfig(integrand, method string) config.Config {
	return config.Config{Integrand: integrand, Method: method}
}
