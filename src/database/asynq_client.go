package database

import (
	"github.com/hibiken/asynq"
)

// RedisConnOpt แปลงค่า redis เป็น option ของ asynq
func RedisConnOpt(addr, password string) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: addr, Password: password}
}

// InitAsynq สร้าง asynq client เฉพาะตอนที่มี Redis
func InitAsynq(addr, password string) *asynq.Client {
	if addr == "" {
		return nil
	}
	return asynq.NewClient(RedisConnOpt(addr, password))
}
