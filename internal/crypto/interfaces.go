package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer защищает токен доступа перед записью в локальную БД.
// Он не знает ничего о сети, базе данных или пользователях.
//
// Схема работы:
//
//	Salt   = 16 случайных байт                      (на каждый Seal)
//	Key    = Argon2id(passphrase, Salt)
//	Stored = "v1:" + base64(Salt ‖ Nonce ‖ AES-GCM(Key, token))
type TokenSealer interface {
	// Seal превращает токен в строку для хранения.
	Seal(token string) (string, error)

	// Open восстанавливает токен из строки, полученной от Seal.
	// Неверная парольная фраза или повреждённые данные дают [ErrOpenFailed].
	Open(stored string) (string, error)
}
