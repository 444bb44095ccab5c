/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fpconv

// pow10UInt32Table holds 10^0 to 10^7.
var pow10UInt32Table = [...]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000,
}

// pow10BigNumTable holds 10^8, 10^16, 10^32, 10^64, 10^128 and 10^256.
var pow10BigNumTable = [...]bigNum{
	// 10^8
	{n: 1, blocks: [bigNumCapacity]uint32{
		0x05f5e100,
	}},
	// 10^16
	{n: 2, blocks: [bigNumCapacity]uint32{
		0x6fc10000, 0x002386f2,
	}},
	// 10^32
	{n: 4, blocks: [bigNumCapacity]uint32{
		0x00000000, 0x85acef81, 0x2d6d415b, 0x000004ee,
	}},
	// 10^64
	{n: 7, blocks: [bigNumCapacity]uint32{
		0x00000000, 0x00000000, 0xbf6a1f01, 0x6e38ed64, 0xdaa797ed, 0xe93ff9f4,
		0x00184f03,
	}},
	// 10^128
	{n: 14, blocks: [bigNumCapacity]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x2e953e01, 0x03df9909,
		0x0f1538fd, 0x2374e42f, 0xd3cff5ec, 0xc404dc08, 0xbccdb0da, 0xa6337f19,
		0xe91f2603, 0x0000024e,
	}},
	// 10^256
	{n: 27, blocks: [bigNumCapacity]uint32{
		0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		0x00000000, 0x00000000, 0x982e7c01, 0xbed3875b, 0xd8d99f72, 0x12152f87,
		0x6bde50c6, 0xcf4a6e70, 0xd595d80f, 0x26b2716e, 0xadc666b0, 0x1d153624,
		0x3c42d35a, 0x63ff540e, 0xcc5573c0, 0x65f9ef17, 0x55bc28f2, 0x80dcc7f7,
		0xf46eeddc, 0x5fdcefce, 0x000553f7,
	}},
}
