package password

// Password couples a validated Config with a crypto-backed Generator for
// one-line use:
//
//	pass, err := password.NewPassword(
//		password.WithLength(16),
//		password.WithNumbers(),
//		password.WithSpecial(),
//		password.WithLower(),
//		password.WithUpper(),
//	).Generate()
type Password struct {
	cfg *Config
	gen *Generator
	err error
}

// NewPassword builds a Password from options. A configuration error is
// reported by Generate.
func NewPassword(o ...OptsFn) *Password {
	cfg, err := NewConfig(o...)
	return &Password{cfg: cfg, gen: NewGenerator(nil), err: err}
}

// Generate returns a fresh random password per call.
func (p *Password) Generate() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.gen.Generate(p.cfg)
}
