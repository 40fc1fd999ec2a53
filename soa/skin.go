package soa

// Skin 用户自定义的记录外观：包装一个 Proxy 并在其上提供具名访问方法
// 核心只要求外观能通过 Bind 接住代理，不关心外观内部
//
//	type Particle struct {
//		soa.Proxy
//	}
//
//	func (p *Particle) Bind(proxy soa.Proxy) { p.Proxy = proxy }
//	func (p *Particle) X() *float64          { return soa.Get(p.Proxy, fieldX) }
type Skin interface {
	Bind(p Proxy)
}

// As 把代理包装成外观 S
func As[S any, PS interface {
	*S
	Skin
}](p Proxy) *S {
	var s S
	PS(&s).Bind(p)
	return &s
}

// EachAs 以外观 S 遍历集合中的每条记录
func EachAs[S any, PS interface {
	*S
	Skin
}](c Collection, fn func(s PS)) {
	n := c.Len()
	for i := 0; i < n; i++ {
		var s S
		ps := PS(&s)
		ps.Bind(c.Index(i))
		fn(ps)
	}
}

// AtAs 带越界检查地取出外观 S
func AtAs[S any, PS interface {
	*S
	Skin
}](c Collection, i int) (*S, error) {
	p, err := c.At(i)
	if err != nil {
		return nil, err
	}
	var s S
	PS(&s).Bind(p)
	return &s, nil
}
