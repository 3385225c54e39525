package internal

import (
	"flag"
	"os"
	"strconv"
)

var c *config

const (
	RunAddress    = "RUN_ADDRESS"
	ShopDomain    = "SHOP_DOMAIN"
	AdminAPIToken = "ADMIN_API_TOKEN"
	APIVersion    = "API_VERSION"
	AdminKey      = "ADMIN_KEY"
	JWTSecret     = "JWT_SECRET"
	PageSize      = "PAGE_SIZE"
)

const (
	defaultRunAddress = "localhost:8080"
	defaultAPIVersion = "2024-01"
	defaultPageSize   = 25
)

type config struct {
	RunAddress    string
	ShopDomain    string
	AdminAPIToken string
	APIVersion    string
	AdminKey      string
	JWTSecret     string
	PageSize      int
}

func NewConfig() *config {
	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.ShopDomain, "s", setEnvOrDefault(ShopDomain, ""), "shop domain, e.g. example.myshopify.com")
	flag.StringVar(&c.AdminAPIToken, "t", setEnvOrDefault(AdminAPIToken, ""), "admin API access token")
	flag.StringVar(&c.APIVersion, "v", setEnvOrDefault(APIVersion, defaultAPIVersion), "admin API version")
	flag.StringVar(&c.AdminKey, "k", setEnvOrDefault(AdminKey, ""), "key required to open an admin session")
	flag.StringVar(&c.JWTSecret, "j", setEnvOrDefault(JWTSecret, "secret"), "session signing secret") //todo secret
	flag.IntVar(&c.PageSize, "p", intEnvOrDefault(PageSize, defaultPageSize), "default orders page size")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}

func intEnvOrDefault(env string, def int) int {
	res, e := os.LookupEnv(env)
	if !e {
		return def
	}

	n, err := strconv.Atoi(res)
	if err != nil {
		return def
	}
	return n
}
