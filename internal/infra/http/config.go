package server

type Config struct {
	Port              string
	JWTSecret         []byte
	disableMiddleware bool
}

func NewConfig(
	port string,
	jwtSecret []byte,
	disableMiddleware bool,
) Config {
	return Config{
		Port:              port,
		JWTSecret:         jwtSecret,
		disableMiddleware: disableMiddleware,
	}
}
