package qlate

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitaryAlgebra(t *testing.T) {
	Convey("Given small unitaries", t, func() {
		x, _ := GateUnitary(X(0))
		z, _ := GateUnitary(Z(0))

		Convey("Multiplying by the identity changes nothing", func() {
			id := IdentityUnitary(2)
			So(x.Mul(id).Data, ShouldResemble, x.Data)
			So(id.Mul(x).Data, ShouldResemble, x.Data)
		})

		Convey("X and Z anticommute", func() {
			xz := x.Mul(z)
			zx := z.Mul(x)
			for i := range xz.Data {
				So(xz.Data[i], ShouldEqual, -zx.Data[i])
			}
		})

		Convey("The Kronecker product lifts dimensions", func() {
			lifted := x.Kron(z)
			So(lifted.Dim, ShouldEqual, 4)
			// (X kron Z)[0,2] = X[0,1] * Z[0,0] = 1
			So(lifted.At(0, 2), ShouldEqual, complex128(1))
			So(lifted.At(1, 3), ShouldEqual, complex128(-1))
		})
	})
}

func TestEqualUpToGlobalPhase(t *testing.T) {
	Convey("Given pairs of matrices", t, func() {
		z, _ := GateUnitary(Z(0))
		expZ, _ := GateUnitary(ExpZ(1, 0))

		Convey("A pure phase factor is ignored", func() {
			So(z.EqualUpToGlobalPhase(expZ, 1e-9), ShouldBeTrue)
			So(expZ.EqualUpToGlobalPhase(z, 1e-9), ShouldBeTrue)
		})

		Convey("Different gates stay different", func() {
			x, _ := GateUnitary(X(0))
			So(z.EqualUpToGlobalPhase(x, 1e-9), ShouldBeFalse)
		})

		Convey("Dimension mismatches never compare equal", func() {
			cz, _ := GateUnitary(Exp11(1, 0, 1))
			So(z.EqualUpToGlobalPhase(cz, 1e-9), ShouldBeFalse)
		})
	})
}

func TestGateUnitaryShapes(t *testing.T) {
	Convey("Given operations of each shape", t, func() {
		Convey("A controlled X yields the CNOT matrix", func() {
			u, err := GateUnitary(CNOT(0, 1))
			So(err, ShouldBeNil)
			So(u.Dim, ShouldEqual, 4)
			So(u.At(0, 0), ShouldEqual, complex128(1))
			So(u.At(1, 1), ShouldEqual, complex128(1))
			So(u.At(2, 3), ShouldEqual, complex128(1))
			So(u.At(3, 2), ShouldEqual, complex128(1))
			So(u.At(2, 2), ShouldEqual, complex128(0))
		})

		Convey("Rotation and power conventions agree up to phase", func() {
			rx, err := GateUnitary(Rx(0.25*math.Pi, 0))
			So(err, ShouldBeNil)
			xpow, err := GateUnitary(XPow(0.25, 0))
			So(err, ShouldBeNil)
			So(rx.EqualUpToGlobalPhase(xpow, 1e-9), ShouldBeTrue)
		})

		Convey("Structural operations have no unitary", func() {
			_, err := GateUnitary(Measure(0))

			var malformed *MalformedOperationError
			So(errors.As(err, &malformed), ShouldBeTrue)
		})
	})
}
