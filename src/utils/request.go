package utils

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// WithTrustedProxies เปิดการอ่าน X-Forwarded-For เฉพาะ request ที่มาจาก proxy ในรายการ
// ไม่มีรายการก็ใช้ socket IP อย่างเดียว
func WithTrustedProxies(cfg fiber.Config, proxies []string) fiber.Config {
	if len(proxies) == 0 {
		return cfg
	}
	cfg.ProxyHeader = fiber.HeaderXForwardedFor
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = proxies
	cfg.EnableIPValidation = true
	return cfg
}

// ClientIP คืน IP ของผู้เรียก ถ้า peer ไม่ใช่ proxy ที่เชื่อถือได้ header จะถูกเมิน
// ถ้าเชื่อถือได้ ไล่ X-Forwarded-For จากขวาแล้วข้าม hop ที่เป็น proxy ของเราเอง
// ค่าซ้ายสุดเป็นสิ่งที่ client ใส่มาเองจึงไม่ใช้
func ClientIP(c *fiber.Ctx) string {
	cfg := c.App().Config()
	if cfg.ProxyHeader == "" || !cfg.EnableTrustedProxyCheck || !c.IsProxyTrusted() {
		return c.Context().RemoteIP().String()
	}

	trusted := parseProxies(cfg.TrustedProxies)
	hops := strings.Split(c.Get(cfg.ProxyHeader), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		ip := net.ParseIP(strings.TrimSpace(hops[i]))
		if ip == nil {
			// hop เสีย ไม่รู้ว่าใครเติม จึงหยุดที่ proxy ตัวสุดท้ายที่รู้จัก
			break
		}
		if !trusted.contains(ip) {
			return ip.String()
		}
	}
	return c.Context().RemoteIP().String()
}

type proxySet []*net.IPNet

func parseProxies(list []string) proxySet {
	out := make(proxySet, 0, len(list))
	for _, entry := range list {
		if _, n, err := net.ParseCIDR(entry); err == nil {
			out = append(out, n)
			continue
		}
		if ip := net.ParseIP(entry); ip != nil {
			bits := 8 * net.IPv6len
			if v4 := ip.To4(); v4 != nil {
				ip, bits = v4, 8*net.IPv4len
			}
			out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
		}
	}
	return out
}

func (s proxySet) contains(ip net.IP) bool {
	for _, n := range s {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// RequestFingerprint คำนวณ fingerprint จาก request ปัจจุบัน
func RequestFingerprint(c *fiber.Ctx, provided string) string {
	return Fingerprint(provided, ClientIP(c), c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage))
}
